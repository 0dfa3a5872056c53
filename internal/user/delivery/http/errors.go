package http

import (
	"errors"

	"inventory-hub/internal/user"
	pkgErrors "inventory-hub/pkg/errors"
)

var (
	errMissingCode   = errors.New("code query parameter is required")
	errOAuthDisabled = user.ErrOAuthDisabled
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(409, "email is already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case errors.Is(err, user.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, user.ErrForbidden):
		return pkgErrors.NewHTTPError(403, "admin role required")
	case errors.Is(err, user.ErrOAuthDisabled):
		return pkgErrors.NewHTTPError(501, "google sign-in is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
