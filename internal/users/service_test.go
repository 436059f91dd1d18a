package users

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalease/legalease-backend/internal/models"
)

type fakeRepo struct {
	byEmail map[string]*models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = primitive.NewObjectID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID.IsZero() {
		t.Fatal("expected assigned id")
	}
	if u.Password == "pw123" || u.Password == "" {
		t.Fatalf("password was not hashed: %q", u.Password)
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "a@x.com", "pw123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "a@x.com", "pw456"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Alice", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := svc.Login(ctx, "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("unexpected user: %v", u.ID)
	}

	if _, err := svc.Login(ctx, "a@x.com", "wrong"); err != ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@x.com", "pw123"); err != ErrNoAccount {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}
}

// same password must hash differently across calls (fresh salt per call)
func TestRegister_SaltedHashes(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	u1, _ := svc.Register(ctx, "A", "a1@x.com", "samepw")
	u2, _ := svc.Register(ctx, "B", "a2@x.com", "samepw")
	if u1.Password == u2.Password {
		t.Fatal("expected different hashes for the same password")
	}
}
