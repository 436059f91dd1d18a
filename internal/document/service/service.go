package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalease/legalease-backend/internal/analysis"
	"github.com/legalease/legalease-backend/internal/document"
	"github.com/legalease/legalease-backend/internal/document/repository"
	"github.com/legalease/legalease-backend/internal/extract"
	"github.com/legalease/legalease-backend/pkg/logger"
	"github.com/legalease/legalease-backend/pkg/metrics"
)

const (
	// maxUploadBytes bounds the accepted payload; checked before extraction runs.
	maxUploadBytes = 10 << 20
	// minReadableChars is the minimum extracted-text length for a document to
	// count as readable. Below it the PDF is likely a scanned image.
	minReadableChars = 100
	// summaryPreviewChars is the read-time truncation applied to history
	// listings; stored summaries are never shortened.
	summaryPreviewChars = 200
)

var (
	ErrUnsupportedMediaType = errors.New("only PDF files are allowed")
	ErrPayloadTooLarge      = errors.New("file size must be under 10MB")
	ErrNoReadableText       = errors.New("could not extract readable text from this PDF; please ensure it's not a scanned image PDF")
	ErrAnalysisFailed       = errors.New("document analysis failed")

	ErrNotFound  = repository.ErrNotFound
	ErrInvalidID = repository.ErrInvalidID
)

// Uploader stores the original file best-effort and returns its URL or "".
type Uploader interface {
	Upload(ctx context.Context, data []byte, fileName string) string
}

// Service runs the ingestion pipeline and serves owner-scoped document reads.
type Service struct {
	extractor extract.Extractor
	uploader  Uploader
	analyzer  analysis.Analyzer
	repo      repository.Repository
}

func New(extractor extract.Extractor, uploader Uploader, analyzer analysis.Analyzer, repo repository.Repository) *Service {
	return &Service{extractor: extractor, uploader: uploader, analyzer: analyzer, repo: repo}
}

// Ingest runs validate -> extract -> upload -> analyze -> persist for one
// uploaded file and returns the stored record. Every stage except the storage
// upload aborts the pipeline on failure.
func (s *Service) Ingest(ctx context.Context, userID, fileName, contentType string, data []byte) (*document.Document, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if contentType != "application/pdf" {
		metrics.IngestFailures.WithLabelValues("validate").Inc()
		return nil, ErrUnsupportedMediaType
	}
	if len(data) > maxUploadBytes {
		metrics.IngestFailures.WithLabelValues("validate").Inc()
		return nil, ErrPayloadTooLarge
	}

	text, err := s.extractor.Text(data)
	if err != nil {
		metrics.IngestFailures.WithLabelValues("extract").Inc()
		logger.Warnf("extraction failed for %q: %v", fileName, err)
		return nil, fmt.Errorf("%w: %v", ErrNoReadableText, err)
	}
	if len(strings.TrimSpace(text)) < minReadableChars {
		metrics.IngestFailures.WithLabelValues("extract").Inc()
		return nil, ErrNoReadableText
	}

	// best-effort: an empty URL flows through, never an error
	fileURL := s.upload(ctx, data, fileName)

	res, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		metrics.IngestFailures.WithLabelValues("analyze").Inc()
		if errors.Is(err, analysis.ErrEmptyDocument) {
			return nil, fmt.Errorf("%w: %v", ErrNoReadableText, err)
		}
		logger.Errorf("analysis failed for %q: %v", fileName, err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	doc := &document.Document{
		UserID:       owner,
		FileName:     fileName,
		FileURL:      fileURL,
		DocumentType: res.DocumentType,
		Summary:      res.Summary,
		RiskClauses:  res.RiskClauses,
		KeyTerms:     res.KeyTerms,
		CreatedAt:    time.Now().UTC(),
	}
	if doc.RiskClauses == nil {
		doc.RiskClauses = []document.RiskClause{}
	}
	if doc.KeyTerms == nil {
		doc.KeyTerms = []document.KeyTerm{}
	}

	if _, err := s.repo.Create(ctx, doc); err != nil {
		metrics.IngestFailures.WithLabelValues("persist").Inc()
		return nil, err
	}
	metrics.DocumentsIngested.Inc()
	logger.Infof("ingested document %s (%s, %d clauses, %d terms) for user %s",
		doc.ID.Hex(), doc.DocumentType, len(doc.RiskClauses), len(doc.KeyTerms), userID)
	return doc, nil
}

func (s *Service) upload(ctx context.Context, data []byte, fileName string) string {
	if s.uploader == nil {
		return ""
	}
	url := s.uploader.Upload(ctx, data, fileName)
	if url == "" {
		metrics.StorageUploadFailures.Inc()
	}
	return url
}

// List returns the user's history, newest first, with summaries truncated to
// a preview length.
func (s *Service) List(ctx context.Context, userID string) ([]document.ListItem, error) {
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]document.ListItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, document.ListItem{
			ID:           d.ID.Hex(),
			FileName:     d.FileName,
			DocumentType: d.DocumentType,
			Summary:      previewSummary(d.Summary),
			CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (*document.Document, error) {
	return s.repo.GetByID(ctx, id, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	return s.repo.DeleteByID(ctx, id, userID)
}

func previewSummary(summary string) string {
	if len(summary) > summaryPreviewChars {
		return summary[:summaryPreviewChars] + "..."
	}
	return summary
}
