package repository

import "inventory-hub/internal/item"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	InventoryID string
	CustomID    string
	CreatorID   string
	Values      item.FieldValues
}

// UpdateItemOptions holds parameters for the guarded Item update. A nil
// CustomID leaves the stored ID untouched; Values always replaces the full
// field value set.
type UpdateItemOptions struct {
	ID              string
	ExpectedVersion int
	CustomID        *string
	Values          item.FieldValues
}
