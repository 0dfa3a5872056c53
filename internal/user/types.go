package user

import (
	"context"
	"time"

	"inventory-hub/internal/model"
)

// User is the account entity.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // empty for OAuth-only accounts
	Image        string
	Role         model.Role
	Blocked      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OAuthUser is the identity returned by an external sign-in provider.
type OAuthUser struct {
	Email string
	Name  string
	Image string
}

// OAuthProvider abstracts the external OAuth sign-in flow.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (OAuthUser, error)
}

// SessionStore tracks revoked session tokens until they expire.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type AuthOutput struct {
	Token string
	User  User
}

type DetailUserOutput struct {
	User           User
	InventoryCount int
}

type AdminUser struct {
	User           User
	InventoryCount int
}

type ListUsersOutput struct {
	Users  []AdminUser
	Total  int
	Admins int
}
