package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentType classifies an analyzed legal document.
type DocumentType string

const (
	TypeRental     DocumentType = "rental"
	TypeEmployment DocumentType = "employment"
	TypeNDA        DocumentType = "nda"
	TypeTerms      DocumentType = "terms"
	TypeLoan       DocumentType = "loan"
	TypeService    DocumentType = "service"
	TypeOther      DocumentType = "other"
)

// ParseDocumentType maps a raw classification to the enum; anything
// unrecognized falls back to TypeOther.
func ParseDocumentType(s string) DocumentType {
	switch DocumentType(s) {
	case TypeRental, TypeEmployment, TypeNDA, TypeTerms, TypeLoan, TypeService, TypeOther:
		return DocumentType(s)
	}
	return TypeOther
}

// RiskClause is a clause the analysis flagged as risky, with a lay explanation.
type RiskClause struct {
	Clause      string `bson:"clause" json:"clause"`
	Explanation string `bson:"explanation" json:"explanation"`
	Severity    string `bson:"severity" json:"severity"` // high | medium | low
}

// KeyTerm is a labelled term/value pair extracted from the document.
type KeyTerm struct {
	Term  string `bson:"term" json:"term"`
	Value string `bson:"value" json:"value"`
}

// Document is the persisted record produced by the ingestion pipeline.
// Records are immutable after creation and owned by exactly one user.
type Document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"-"`
	FileName     string             `bson:"fileName" json:"fileName"`
	FileURL      string             `bson:"fileUrl" json:"fileUrl"`
	DocumentType DocumentType       `bson:"documentType" json:"documentType"`
	Summary      string             `bson:"summary" json:"summary"`
	RiskClauses  []RiskClause       `bson:"riskClauses" json:"riskClauses"`
	KeyTerms     []KeyTerm          `bson:"keyTerms" json:"keyTerms"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// ListItem is the history view of a document. Summary is truncated at read
// time; the stored summary is never shortened.
type ListItem struct {
	ID           string       `json:"id"`
	FileName     string       `json:"fileName"`
	DocumentType DocumentType `json:"documentType"`
	Summary      string       `json:"summary"`
	CreatedAt    string       `json:"createdAt"`
}

// View is the full single-document response body.
type View struct {
	ID           string       `json:"id"`
	FileName     string       `json:"fileName"`
	FileURL      string       `json:"fileUrl"`
	DocumentType DocumentType `json:"documentType"`
	Summary      string       `json:"summary"`
	RiskClauses  []RiskClause `json:"riskClauses"`
	KeyTerms     []KeyTerm    `json:"keyTerms"`
	CreatedAt    string       `json:"createdAt"`
}

// NewView builds the response body for a persisted document. riskClauses and
// keyTerms are always non-nil slices, even on degraded records.
func NewView(d *Document) *View {
	rc := d.RiskClauses
	if rc == nil {
		rc = []RiskClause{}
	}
	kt := d.KeyTerms
	if kt == nil {
		kt = []KeyTerm{}
	}
	return &View{
		ID:           d.ID.Hex(),
		FileName:     d.FileName,
		FileURL:      d.FileURL,
		DocumentType: d.DocumentType,
		Summary:      d.Summary,
		RiskClauses:  rc,
		KeyTerms:     kt,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
