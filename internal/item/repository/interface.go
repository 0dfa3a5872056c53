package repository

import (
	"context"

	"inventory-hub/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
	LikeRepository
}

// ItemRepository defines data access for the Item entity.
type ItemRepository interface {
	// CreateItem inserts a new item. A unique key on (inventory_id,
	// custom_id) is the authority on ID uniqueness; a violation returns
	// ErrDuplicateCustomID.
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, id string) (item.Item, error)
	ListItems(ctx context.Context, inventoryID string) ([]item.Item, error)
	// GetLatestItem returns the most recently created item of the inventory,
	// zero-value when the inventory is empty. Its custom ID seeds sequence
	// generation for the next item.
	GetLatestItem(ctx context.Context, inventoryID string) (item.Item, error)
	// UpdateItem is the versioned mutation guard for items: one conditional
	// statement predicated on ExpectedVersion. Returns ErrVersionConflict,
	// ErrRowNotFound, or ErrDuplicateCustomID.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	// DeleteItems removes the given items, constrained to one inventory so a
	// bulk request cannot reach across collections.
	DeleteItems(ctx context.Context, inventoryID string, ids []string) error
	SearchItems(ctx context.Context, query string, limit int) ([]item.Item, error)
}

// LikeRepository defines data access for item likes.
type LikeRepository interface {
	CreateLike(ctx context.Context, itemID, userID string) error
	DeleteLike(ctx context.Context, itemID, userID string) error
	CountLikes(ctx context.Context, itemID string) (int, error)
	HasLiked(ctx context.Context, itemID, userID string) (bool, error)
	// CountLikesBulk returns like counts for many items at once.
	CountLikesBulk(ctx context.Context, itemIDs []string) (map[string]int, error)
	// ListLikedItemIDs filters itemIDs down to the ones userID has liked.
	ListLikedItemIDs(ctx context.Context, userID string, itemIDs []string) (map[string]bool, error)
}
