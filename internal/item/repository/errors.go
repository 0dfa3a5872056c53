package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrRowNotFound: the conditional update targeted a row that no longer
	// exists.
	ErrRowNotFound = errors.New("record not found")
	// ErrVersionConflict: the conditional update matched the row but not the
	// expected version; nothing was written.
	ErrVersionConflict = errors.New("version mismatch")
	// ErrDuplicateCustomID: unique key violation on (inventory_id, custom_id).
	ErrDuplicateCustomID = errors.New("custom ID already exists")
	// ErrDuplicateLike: the user already liked the item.
	ErrDuplicateLike = errors.New("like already exists")
)
