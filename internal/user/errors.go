package user

import "errors"

// Domain-specific errors for the user package.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
	ErrForbidden          = errors.New("admin role required")
	ErrOAuthDisabled      = errors.New("google sign-in is not configured")
)
