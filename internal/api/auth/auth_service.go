package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hsm-gustavo/smart-pantry/internal/api/user"
	"github.com/hsm-gustavo/smart-pantry/internal/common"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
	"github.com/hsm-gustavo/smart-pantry/internal/logging"
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email  string  `json:"email" example:"joao@example.com"`
	Role   db.Role `json:"role" example:"user"`
}

type AuthResult struct {
	Token string
	User  Identity
}

type AuthService struct {
	UserService *user.UserService
	Hasher      *Hasher
	Tokens      *TokenService
	logger      logging.Logger
}

func NewAuthService(us *user.UserService, h *Hasher, ts *TokenService, l logging.Logger) *AuthService {
	return &AuthService{
		UserService: us,
		Hasher:      h,
		Tokens:      ts,
		logger:      l.With("module", "auth"),
	}
}

// Signup registers a new account and returns a token for it. The role
// defaults to "user".
func (s *AuthService) Signup(ctx context.Context, email, password string, role db.Role) (*AuthResult, error) {
	email = user.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password required: %w", common.ErrValidation)
	}
	if role == "" {
		role = db.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, common.ErrValidation)
	}

	existing, err := s.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", common.ErrConflict)
	}

	salt, err := GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	u, err := s.UserService.CreateUser(ctx, email, role, s.Hasher.Hash(password, salt), salt)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user signed up", "user_id", u.ID, "role", u.Role)
	return s.authenticated(u)
}

// Login checks the credentials. Unknown emails and wrong passwords both
// yield common.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = user.NormalizeEmail(email)

	u, err := s.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if u == nil {
		// spend the same hashing work as for a real account
		if salt, err := GenerateSalt(); err == nil {
			s.Hasher.Hash(password, salt)
		}
		s.logger.Info(ctx, "login rejected")
		return nil, common.ErrUnauthorized
	}

	if !s.Hasher.Verify(password, u.Salt, u.PasswordHash) {
		s.logger.Info(ctx, "login rejected", "user_id", u.ID)
		return nil, common.ErrUnauthorized
	}

	return s.authenticated(*u)
}

// Introspect verifies a raw token and returns the identity it carries.
func (s *AuthService) Introspect(ctx context.Context, token string) (*Identity, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	return &Identity{UserID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

func (s *AuthService) authenticated(u db.User) (*AuthResult, error) {
	token, err := s.Tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}
	return &AuthResult{
		Token: token,
		User:  Identity{UserID: u.ID, Email: u.Email, Role: u.Role},
	}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header format")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
