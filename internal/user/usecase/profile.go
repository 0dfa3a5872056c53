package usecase

import (
	"context"

	"inventory-hub/internal/user"
	repo "inventory-hub/internal/user/repository"
)

// Profile returns a user's public profile with their owned-inventory count.
func (uc *implUseCase) Profile(ctx context.Context, id string) (user.DetailUserOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile GetOneUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	if u.ID == "" {
		return user.DetailUserOutput{}, user.ErrNotFound
	}

	count, err := uc.repo.CountInventories(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile CountInventories: %v", err)
		return user.DetailUserOutput{}, err
	}

	return user.DetailUserOutput{User: u, InventoryCount: count}, nil
}
