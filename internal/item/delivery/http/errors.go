package http

import (
	"errors"

	"inventory-hub/internal/item"
	pkgErrors "inventory-hub/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "item not found")
	case errors.Is(err, item.ErrInventoryNotFound):
		return pkgErrors.NewHTTPError(404, "inventory not found")
	case errors.Is(err, item.ErrForbidden):
		return pkgErrors.NewHTTPError(403, "you do not have write access to this inventory")
	case errors.Is(err, item.ErrVersionConflict):
		return pkgErrors.NewHTTPError(409, "item has been modified by another user, refresh and try again")
	case errors.Is(err, item.ErrDuplicateCustomID):
		return pkgErrors.NewHTTPError(409, "custom ID already exists in this inventory")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
