package users

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/legalease/legalease-backend/internal/models"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrNoAccount     = errors.New("no account found with this email")
	ErrWrongPassword = errors.New("incorrect password")
)

// Service encapsulates account registration and credential verification.
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// Register hashes the password and stores a new user. Fails with ErrEmailTaken
// when the email is already registered.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	return s.repo.Create(ctx, u)
}

// Login verifies credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNoAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
