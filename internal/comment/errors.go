package comment

import "errors"

// Domain-specific errors for the comment package.
var (
	ErrNotFound          = errors.New("comment not found")
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrForbidden         = errors.New("only the author or an admin may delete a comment")
	ErrEmptyBody         = errors.New("comment body is required")
)
