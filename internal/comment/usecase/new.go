package usecase

import (
	"context"

	"inventory-hub/internal/comment/repository"
	"inventory-hub/internal/inventory"
	"inventory-hub/pkg/log"
)

// InventoryReader is the slice of the inventory store the comment domain
// needs to verify the thread's inventory exists.
type InventoryReader interface {
	GetOneInventory(ctx context.Context, id string) (inventory.Inventory, error)
}

// implUseCase is the private implementation of comment.UseCase.
type implUseCase struct {
	repo        repository.Repository
	inventories InventoryReader
	l           log.Logger
}

// New creates a new comment UseCase implementation.
func New(repo repository.Repository, inventories InventoryReader, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		inventories: inventories,
		l:           l,
	}
}
