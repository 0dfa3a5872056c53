package repository

import "inventory-hub/internal/model"

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
	Image        string
	Role         model.Role
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions holds parameters for a partial User update. Nil pointer
// fields are left unchanged.
type UpdateUserOptions struct {
	ID      string
	Name    *string
	Image   *string
	Role    *model.Role
	Blocked *bool
}
