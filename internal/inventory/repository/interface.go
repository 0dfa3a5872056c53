package repository

import (
	"context"

	"inventory-hub/internal/inventory"
)

// Repository is the composed interface for the inventory domain data store.
type Repository interface {
	InventoryRepository
	FieldRepository
	AccessRepository
	TagRepository
	StatsRepository
}

// InventoryRepository defines data access for the Inventory entity.
type InventoryRepository interface {
	CreateInventory(ctx context.Context, opt CreateInventoryOptions) (inventory.Inventory, error)
	GetOneInventory(ctx context.Context, id string) (inventory.Inventory, error)
	ListInventories(ctx context.Context, opt ListInventoriesOptions) ([]inventory.Summary, error)
	// UpdateInventory is the versioned mutation guard: a single conditional
	// statement that applies the changes and bumps version by 1 only while
	// the stored version still equals ExpectedVersion. It returns
	// ErrVersionConflict when the row exists with another version and
	// ErrRowNotFound when it no longer exists.
	UpdateInventory(ctx context.Context, opt UpdateInventoryOptions) (inventory.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
	SearchInventories(ctx context.Context, query string, limit int) ([]inventory.Summary, error)
	CountItems(ctx context.Context, inventoryID string) (int, error)
}

// FieldRepository defines data access for custom field definitions.
type FieldRepository interface {
	ListFields(ctx context.Context, inventoryID string) ([]inventory.Field, error)
	// ReplaceFields transactionally deletes all field definitions of the
	// inventory and inserts the given set.
	ReplaceFields(ctx context.Context, inventoryID string, fields []FieldOptions) error
}

// AccessRepository defines data access for access grants.
type AccessRepository interface {
	CreateAccessGrant(ctx context.Context, inventoryID, userID string) (inventory.AccessGrant, error)
	GetOneAccessGrant(ctx context.Context, opt GetOneAccessGrantOptions) (inventory.AccessGrant, error)
	ListAccessGrants(ctx context.Context, inventoryID string) ([]inventory.AccessGrant, error)
	DeleteAccessGrant(ctx context.Context, grantID string) error
}

// TagRepository defines data access for tags and inventory-tag links.
type TagRepository interface {
	UpsertTag(ctx context.Context, name string) (inventory.Tag, error)
	LinkTag(ctx context.Context, inventoryID, tagID string) error
	UnlinkTag(ctx context.Context, inventoryID, tagID string) error
	ListTags(ctx context.Context, inventoryID string) ([]inventory.Tag, error)
	SearchTags(ctx context.Context, prefix string, limit int) ([]inventory.TagWithCount, error)
}

// StatsRepository exposes the raw item field values needed for aggregation.
type StatsRepository interface {
	ListItemFieldRows(ctx context.Context, inventoryID string) ([]ItemFieldRow, error)
}
