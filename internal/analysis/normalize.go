package analysis

import (
	"encoding/json"
	"strings"

	"github.com/legalease/legalease-backend/internal/document"
)

// ParseResult turns the raw model output into a Result. Code fences are
// stripped even though the prompt forbids them, missing fields are defaulted
// and the document type is clamped to the known enum, so the persisted record
// invariants hold even under a degraded model response.
func ParseResult(raw string) (*Result, error) {
	cleaned := stripCodeFences(raw)

	var parsed struct {
		Summary      *string               `json:"summary"`
		DocumentType *string               `json:"documentType"`
		RiskClauses  []document.RiskClause `json:"riskClauses"`
		KeyTerms     []document.KeyTerm    `json:"keyTerms"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, ErrInvalidResponse
	}

	res := &Result{
		Summary:      "Summary not available.",
		DocumentType: document.TypeOther,
		RiskClauses:  []document.RiskClause{},
		KeyTerms:     []document.KeyTerm{},
	}
	if parsed.Summary != nil {
		res.Summary = *parsed.Summary
	}
	if parsed.DocumentType != nil {
		res.DocumentType = document.ParseDocumentType(*parsed.DocumentType)
	}
	if parsed.RiskClauses != nil {
		res.RiskClauses = parsed.RiskClauses
	}
	if parsed.KeyTerms != nil {
		res.KeyTerms = parsed.KeyTerms
	}
	return res, nil
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
