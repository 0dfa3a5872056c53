package usecase

import (
	"context"

	"inventory-hub/internal/inventory"
	invRepo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/item/repository"
	"inventory-hub/pkg/customid"
	"inventory-hub/pkg/log"
)

// maxGenerateAttempts bounds the regenerate-on-duplicate loop for
// auto-generated custom IDs. Sequence collisions between concurrent creators
// resolve on the next attempt because the latest item has moved.
const maxGenerateAttempts = 3

// InventoryReader is the slice of the inventory store the item domain needs
// for authorization and custom ID formats. The inventory domain's MySQL
// repository satisfies it.
type InventoryReader interface {
	GetOneInventory(ctx context.Context, id string) (inventory.Inventory, error)
	GetOneAccessGrant(ctx context.Context, opt invRepo.GetOneAccessGrantOptions) (inventory.AccessGrant, error)
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo        repository.Repository
	inventories InventoryReader
	gen         *customid.Generator
	l           log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, inventories InventoryReader, gen *customid.Generator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		inventories: inventories,
		gen:         gen,
		l:           l,
	}
}
