package search

import (
	"inventory-hub/internal/inventory"
	"inventory-hub/internal/item"
)

// Output carries the combined search result across entities.
type Output struct {
	Inventories []inventory.Summary
	Items       []item.Item
}
