package http

import (
	"errors"

	"inventory-hub/internal/comment"
	pkgErrors "inventory-hub/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, comment.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "comment not found")
	case errors.Is(err, comment.ErrInventoryNotFound):
		return pkgErrors.NewHTTPError(404, "inventory not found")
	case errors.Is(err, comment.ErrForbidden):
		return pkgErrors.NewHTTPError(403, "only the author or an admin may delete a comment")
	case errors.Is(err, comment.ErrEmptyBody):
		return pkgErrors.NewHTTPError(400, "comment body is required")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
