package item

import "time"

// FieldValues carries the typed custom field values of an item. Each kind
// has three fixed slots; nil means the slot is unset.
type FieldValues struct {
	Strings [3]*string
	Texts   [3]*string
	Numbers [3]*float64
	Links   [3]*string
	Bools   [3]*bool
}

// Item is one entry of an inventory. CustomID is unique within the inventory
// and generated from the inventory's format when the caller does not supply
// one. Version implements optimistic locking, like the inventory itself.
type Item struct {
	ID          string
	InventoryID string
	CustomID    string
	CreatorID   string
	Values      FieldValues
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Detail is an item with its social counters.
type Detail struct {
	Item      Item
	LikeCount int
	LikedByMe bool
}

// --- UseCase Inputs ---

// CreateInput creates an item. An empty CustomID asks for generation from
// the inventory's format.
type CreateInput struct {
	InventoryID string
	CustomID    string
	Values      FieldValues
}

// UpdateInput is a guarded partial update. Version is the caller-observed
// item version; nil skips the optimistic-lock check. A nil CustomID leaves
// the stored ID untouched.
type UpdateInput struct {
	ID       string
	CustomID *string
	Values   FieldValues
	Version  *int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items []Detail
	Total int
}
