package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gh-aakash/BillionBrains/pkg/auth"
	"github.com/gh-aakash/BillionBrains/pkg/password"
	"github.com/gh-aakash/BillionBrains/services/identity-service/internal/domain"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
	ErrMissingField       = errors.New("missing required field")
)

// UserStore is the credential record repository.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByID(ctx context.Context, id string) (*domain.User, error)
}

type IdentitySvc struct {
	store  UserStore
	issuer *auth.Issuer
	now    func() time.Time
}

func NewIdentitySvc(store UserStore, issuer *auth.Issuer) *IdentitySvc {
	return &IdentitySvc{store: store, issuer: issuer, now: time.Now}
}

// Register hashes the password and persists a new user. Email
// uniqueness is the store's concern; a violation surfaces as a plain
// storage error.
func (s *IdentitySvc) Register(ctx context.Context, email, pass, fullName, bio, role string) (*domain.User, error) {
	if email == "" || pass == "" {
		return nil, ErrMissingField
	}
	hash, err := password.Hash(pass)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if role == "" {
		role = domain.RoleCreator
	}
	u := &domain.User{Email: email, PasswordHash: hash, FullName: fullName, Bio: bio, Role: role}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and issues a session token. A missing user
// and a failed verification take the same exit.
func (s *IdentitySvc) Login(ctx context.Context, email, pass string) (*domain.User, string, error) {
	u, err := s.store.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("fetch user: %w", err)
	}
	if !password.Verify(pass, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(u.Email, u.ID, s.now())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

func (s *IdentitySvc) Get(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	u, err := s.store.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return u, nil
}
