package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legalease/legalease-backend/internal/document"
)

func TestParseResult_Complete(t *testing.T) {
	raw := `{
		"summary": "A rental agreement for a flat.",
		"documentType": "rental",
		"riskClauses": [{"clause": "c1", "explanation": "e1", "severity": "high"}],
		"keyTerms": [{"term": "Monthly Rent", "value": "Rs. 15000"}]
	}`
	res, err := ParseResult(raw)
	require.NoError(t, err)
	require.Equal(t, "A rental agreement for a flat.", res.Summary)
	require.Equal(t, document.TypeRental, res.DocumentType)
	require.Len(t, res.RiskClauses, 1)
	require.Equal(t, "high", res.RiskClauses[0].Severity)
	require.Len(t, res.KeyTerms, 1)
}

func TestParseResult_MissingFieldsDefaulted(t *testing.T) {
	res, err := ParseResult(`{}`)
	require.NoError(t, err)
	require.Equal(t, "Summary not available.", res.Summary)
	require.Equal(t, document.TypeOther, res.DocumentType)
	require.NotNil(t, res.RiskClauses)
	require.Empty(t, res.RiskClauses)
	require.NotNil(t, res.KeyTerms)
	require.Empty(t, res.KeyTerms)
}

func TestParseResult_UnknownTypeFallsBack(t *testing.T) {
	res, err := ParseResult(`{"documentType": "mortgage"}`)
	require.NoError(t, err)
	require.Equal(t, document.TypeOther, res.DocumentType)
}

func TestParseResult_CodeFencesStripped(t *testing.T) {
	raw := "```json\n{\"summary\": \"fenced\", \"documentType\": \"nda\"}\n```"
	res, err := ParseResult(raw)
	require.NoError(t, err)
	require.Equal(t, "fenced", res.Summary)
	require.Equal(t, document.TypeNDA, res.DocumentType)
}

func TestParseResult_InvalidJSON(t *testing.T) {
	_, err := ParseResult("I could not analyze this document.")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseResult_PresentButEmptySummaryKept(t *testing.T) {
	res, err := ParseResult(`{"summary": ""}`)
	require.NoError(t, err)
	require.Equal(t, "", res.Summary)
}
