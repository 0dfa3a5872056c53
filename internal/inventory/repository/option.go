package repository

import "inventory-hub/internal/inventory"

// CreateInventoryOptions holds parameters for inserting a new Inventory.
// CustomIDFormat is stored as pre-marshaled JSON.
type CreateInventoryOptions struct {
	Title          string
	Description    string
	Category       string
	IsPublic       bool
	CreatorID      string
	CustomIDFormat []byte
}

// ListInventoriesOptions holds filter parameters for listing inventories.
// All non-empty filters are applied as AND conditions.
type ListInventoriesOptions struct {
	CreatorID string
	GrantedTo string // inventories with an access grant for this user
	TagName   string
	OrderBy   string // "created_at DESC" (default) or "item_count DESC"
	Limit     int
}

// UpdateInventoryOptions holds parameters for the guarded Inventory update.
// Nil pointer fields are left unchanged; ExpectedVersion is the version the
// conditional write is predicated on.
type UpdateInventoryOptions struct {
	ID              string
	ExpectedVersion int
	Title           *string
	Description     *string
	Category        *string
	IsPublic        *bool
	CustomIDFormat  []byte // nil leaves the format unchanged
}

// FieldOptions holds one field definition for ReplaceFields.
type FieldOptions struct {
	Kind           inventory.FieldKind
	Slot           int
	Title          string
	Description    string
	VisibleInTable bool
	Order          int
}

// GetOneAccessGrantOptions holds filter parameters for fetching a grant.
type GetOneAccessGrantOptions struct {
	ID          string
	InventoryID string
	UserID      string
}

// ItemFieldRow carries the raw typed field columns of one item, consumed by
// the statistics aggregation. Nil means the column is unset.
type ItemFieldRow struct {
	Strings [3]*string
	Texts   [3]*string
	Numbers [3]*float64
	Links   [3]*string
	Bools   [3]*bool
}
