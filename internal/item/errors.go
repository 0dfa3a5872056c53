package item

import "errors"

// Domain-specific errors for the item package.
var (
	ErrNotFound          = errors.New("item not found")
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrForbidden         = errors.New("write access denied")
	ErrVersionConflict   = errors.New("item has been modified by another user, refresh and try again")
	ErrDuplicateCustomID = errors.New("custom ID already exists in this inventory")
)
