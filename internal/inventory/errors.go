package inventory

import "errors"

// Domain-specific errors for the inventory package.
var (
	ErrNotFound        = errors.New("inventory not found")
	ErrForbidden       = errors.New("write access denied")
	ErrVersionConflict = errors.New("inventory has been modified by another user, refresh and try again")
	ErrInvalidFormat   = errors.New("custom ID format is invalid")
	ErrTooManyFields   = errors.New("at most 3 fields of each kind are allowed")
	ErrAlreadyGranted  = errors.New("user already has access")
	ErrGrantNotFound   = errors.New("access grant not found")
	ErrTagAlreadyAdded = errors.New("tag already added")
	ErrTagNotFound     = errors.New("tag not found")
)
