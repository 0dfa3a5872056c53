package usecase

import (
	"context"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/model"
)

// Home returns the public landing sections: the newest inventories and the
// ones holding the most items.
func (uc *implUseCase) Home(ctx context.Context) (inventory.HomeOutput, error) {
	latest, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{
		OrderBy: "created_at DESC",
		Limit:   homeLatestLimit,
	})
	if err != nil {
		return inventory.HomeOutput{}, err
	}

	popular, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{
		OrderBy: "item_count DESC",
		Limit:   homePopularLimit,
	})
	if err != nil {
		return inventory.HomeOutput{}, err
	}

	return inventory.HomeOutput{Latest: latest, Popular: popular}, nil
}

// Dashboard returns the caller's owned inventories, the inventories shared
// with them, and the total item count across the owned ones.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (inventory.DashboardOutput, error) {
	owned, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{CreatorID: sc.UserID})
	if err != nil {
		return inventory.DashboardOutput{}, err
	}

	accessible, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{GrantedTo: sc.UserID})
	if err != nil {
		return inventory.DashboardOutput{}, err
	}

	totalItems := 0
	for _, s := range owned {
		totalItems += s.ItemCount
	}

	return inventory.DashboardOutput{
		Owned:      owned,
		Accessible: accessible,
		TotalItems: totalItems,
	}, nil
}
