package user

import (
	"context"

	"inventory-hub/internal/model"
)

type UseCase interface {
	// Authentication
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	GoogleAuthURL(state string) string
	LoginWithGoogle(ctx context.Context, code string) (AuthOutput, error)
	Logout(ctx context.Context, sc model.Scope) error

	// Profiles
	Profile(ctx context.Context, id string) (DetailUserOutput, error)

	// Admin user management
	AdminListUsers(ctx context.Context, sc model.Scope) (ListUsersOutput, error)
	AdminSetRole(ctx context.Context, sc model.Scope, userID string, role model.Role) (DetailUserOutput, error)
	AdminSetBlocked(ctx context.Context, sc model.Scope, userID string, blocked bool) (DetailUserOutput, error)
	AdminDeleteUser(ctx context.Context, sc model.Scope, userID string) error
}
