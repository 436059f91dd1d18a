package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText_NotAPDF(t *testing.T) {
	e := NewPDFExtractor()
	_, err := e.Text([]byte("this is plain text, not a pdf"))
	require.Error(t, err)
}

func TestText_TruncatedPDF(t *testing.T) {
	e := NewPDFExtractor()
	// a valid header followed by garbage is still not a well-formed PDF
	_, err := e.Text([]byte("%PDF-1.4\ngarbage"))
	require.Error(t, err)
}

func TestText_Empty(t *testing.T) {
	e := NewPDFExtractor()
	_, err := e.Text(nil)
	require.Error(t, err)
}
