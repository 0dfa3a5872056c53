package usecase

import (
	"context"
	"errors"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/model"
	"inventory-hub/internal/user"
	userRepo "inventory-hub/internal/user/repository"
)

// GrantAccess gives userID write access to the inventory's items.
func (uc *implUseCase) GrantAccess(ctx context.Context, sc model.Scope, id, userID string) (inventory.AccessGrant, error) {
	inv, err := uc.getManaged(ctx, sc, id)
	if err != nil {
		return inventory.AccessGrant{}, err
	}

	grantee, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		return inventory.AccessGrant{}, err
	}
	if grantee.ID == "" {
		return inventory.AccessGrant{}, user.ErrNotFound
	}

	grant, err := uc.repo.CreateAccessGrant(ctx, inv.ID, grantee.ID)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateLink) {
			return inventory.AccessGrant{}, inventory.ErrAlreadyGranted
		}
		uc.l.Errorf(ctx, "inventory/usecase.GrantAccess: %v", err)
		return inventory.AccessGrant{}, err
	}
	return grant, nil
}

// RevokeAccess removes a grant from the inventory.
func (uc *implUseCase) RevokeAccess(ctx context.Context, sc model.Scope, id, grantID string) error {
	inv, err := uc.getManaged(ctx, sc, id)
	if err != nil {
		return err
	}

	grant, err := uc.repo.GetOneAccessGrant(ctx, repo.GetOneAccessGrantOptions{ID: grantID, InventoryID: inv.ID})
	if err != nil {
		return err
	}
	if grant.ID == "" {
		return inventory.ErrGrantNotFound
	}

	return uc.repo.DeleteAccessGrant(ctx, grant.ID)
}
