package repository

import (
	"context"
	"errors"

	"github.com/legalease/legalease-backend/internal/document"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

// Repository persists documents scoped to their owning user. Reads and deletes
// match on id AND owner in a single predicate so a wrong-owner lookup is
// indistinguishable from a nonexistent one.
type Repository interface {
	Create(ctx context.Context, d *document.Document) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*document.Document, error)
	GetByID(ctx context.Context, id, userID string) (*document.Document, error)
	DeleteByID(ctx context.Context, id, userID string) error
}
