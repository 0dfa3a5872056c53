package http

import (
	"errors"

	"inventory-hub/internal/inventory"
	"inventory-hub/internal/user"
	pkgErrors "inventory-hub/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "inventory not found")
	case errors.Is(err, inventory.ErrForbidden):
		return pkgErrors.NewHTTPError(403, "you do not have access to this inventory")
	case errors.Is(err, inventory.ErrVersionConflict):
		return pkgErrors.NewHTTPError(409, "inventory has been modified by another user, refresh and try again")
	case errors.Is(err, inventory.ErrInvalidFormat):
		return pkgErrors.NewHTTPError(400, "custom ID format is invalid")
	case errors.Is(err, inventory.ErrTooManyFields):
		return pkgErrors.NewHTTPError(400, "at most 3 fields of each kind are allowed")
	case errors.Is(err, inventory.ErrAlreadyGranted):
		return pkgErrors.NewHTTPError(409, "user already has access")
	case errors.Is(err, inventory.ErrGrantNotFound):
		return pkgErrors.NewHTTPError(404, "access grant not found")
	case errors.Is(err, inventory.ErrTagAlreadyAdded):
		return pkgErrors.NewHTTPError(409, "tag already added")
	case errors.Is(err, inventory.ErrTagNotFound):
		return pkgErrors.NewHTTPError(404, "tag not found")
	case errors.Is(err, user.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
