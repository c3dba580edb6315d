package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer issues access tokens for authenticated users. The
// concrete implementation lives in infrastructure/auth.
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// RegisterRequest carries the fields needed to create an account
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned from a successful login
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *identity.User
}

// UserService handles registration, login, and caller resolution
type UserService struct {
	users  identity.UserRepository
	tokens TokenIssuer
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*identity.User, error) {
	if len(req.Password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	exists, err := s.users.ExistsByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	exists, err = s.users.ExistsByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "This username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Username, req.Email, string(hash))
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// GetByID resolves a user record by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return s.users.FindByID(ctx, id)
}
