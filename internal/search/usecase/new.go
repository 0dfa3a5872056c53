package usecase

import (
	"context"

	"inventory-hub/internal/inventory"
	"inventory-hub/internal/item"
	"inventory-hub/pkg/log"
)

// minQueryLength is the shortest query that hits the store.
const minQueryLength = 2

// resultLimit caps hits per entity kind.
const resultLimit = 5

// InventorySearcher is the slice of the inventory store search consumes.
type InventorySearcher interface {
	SearchInventories(ctx context.Context, query string, limit int) ([]inventory.Summary, error)
}

// ItemSearcher is the slice of the item store search consumes.
type ItemSearcher interface {
	SearchItems(ctx context.Context, query string, limit int) ([]item.Item, error)
}

// implUseCase is the private implementation of search.UseCase.
type implUseCase struct {
	inventories InventorySearcher
	items       ItemSearcher
	l           log.Logger
}

// New creates a new search UseCase implementation.
func New(inventories InventorySearcher, items ItemSearcher, l log.Logger) *implUseCase {
	return &implUseCase{
		inventories: inventories,
		items:       items,
		l:           l,
	}
}
