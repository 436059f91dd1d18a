package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalease/legalease-backend/internal/document"
)

// MemoryRepo is an in-memory Repository used in unit tests. It mirrors the
// Mongo repository's ownership and ordering semantics.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*document.Document)}
}

func (m *MemoryRepo) Create(ctx context.Context, d *document.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	cp := *d
	m.store[d.ID.Hex()] = &cp
	return d.ID.Hex(), nil
}

func (m *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]*document.Document, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*document.Document{}
	for _, d := range m.store {
		if d.UserID == owner {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id, userID string) (*document.Document, error) {
	oid, owner, err := parseIDs(id, userID)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[oid.Hex()]
	if !ok || d.UserID != owner {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *MemoryRepo) DeleteByID(ctx context.Context, id, userID string) error {
	oid, owner, err := parseIDs(id, userID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[oid.Hex()]
	if !ok || d.UserID != owner {
		return ErrNotFound
	}
	delete(m.store, oid.Hex())
	return nil
}

func parseIDs(id, userID string) (primitive.ObjectID, primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidID
	}
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidID
	}
	return oid, owner, nil
}
