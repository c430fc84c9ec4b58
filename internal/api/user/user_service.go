package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hsm-gustavo/smart-pantry/internal/common"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
)

// Store is the subset of the data layer the user service relies on.
type Store interface {
	CreateUser(ctx context.Context, u db.User) (db.User, error)
	FindUserByEmail(ctx context.Context, email string) (db.User, error)
	GetUserByID(ctx context.Context, id string) (db.User, error)
}

type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// NormalizeEmail lowercases and trims an address. Emails are compared and
// stored only in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser assigns a fresh id and stores the user. It fails with
// common.ErrConflict when the email is taken.
func (s *UserService) CreateUser(ctx context.Context, email string, role db.Role, passwordHash, salt string) (db.User, error) {
	u := db.User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		Role:         role,
		PasswordHash: passwordHash,
		Salt:         salt,
	}

	created, err := s.store.CreateUser(ctx, u)
	if err != nil {
		return db.User{}, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

// GetUserByEmail returns nil, nil when no user has that email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	u, err := s.store.FindUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns nil, nil when the id is unknown.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*db.User, error) {
	u, err := s.store.GetUserByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
