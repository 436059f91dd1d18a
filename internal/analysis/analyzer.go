package analysis

import (
	"context"
	"errors"

	"github.com/legalease/legalease-backend/internal/document"
)

var (
	// ErrEmptyDocument means there was no text to analyze.
	ErrEmptyDocument = errors.New("document appears to be empty or unreadable")
	// ErrInvalidResponse means the model returned something that is not the
	// requested JSON object.
	ErrInvalidResponse = errors.New("analysis returned invalid JSON")
)

// maxInputChars bounds how much document text is submitted; the model sees
// only the head of long documents.
const maxInputChars = 12000

// Result is the structured outcome of analyzing one document.
type Result struct {
	Summary      string                `json:"summary"`
	DocumentType document.DocumentType `json:"documentType"`
	RiskClauses  []document.RiskClause `json:"riskClauses"`
	KeyTerms     []document.KeyTerm    `json:"keyTerms"`
}

// Analyzer produces a structured analysis from extracted document text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*Result, error)
}
