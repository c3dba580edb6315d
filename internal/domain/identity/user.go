package identity

import (
	"strings"
	"time"

	"github.com/novelhub/backend/internal/domain/shared"
)

// User is a platform account surfaced by the identity provider. The
// VIP flag is the entitlement every premium check keys on.
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsVip        bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with an already-hashed password
func NewUser(username, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || len(username) > 50 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username must be between 1 and 50 characters")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email address is required")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash is required")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsVip:        false,
	}, nil
}

// GrantVip enables the VIP entitlement
func (u *User) GrantVip() {
	u.IsVip = true
	u.UpdatedAt = time.Now()
}

// RevokeVip disables the VIP entitlement
func (u *User) RevokeVip() {
	u.IsVip = false
	u.UpdatedAt = time.Now()
}
