package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/model"
	userRepo "inventory-hub/internal/user/repository"
	"inventory-hub/pkg/customid"
)

// canManage reports whether sc may change inventory settings (metadata,
// format, fields, grants, deletion). Only the creator and admins qualify.
func canManage(sc model.Scope, inv inventory.Inventory) bool {
	return sc.IsAdmin() || inv.CreatorID == sc.UserID
}

// getManaged fetches an inventory and authorizes settings-level access.
func (uc *implUseCase) getManaged(ctx context.Context, sc model.Scope, id string) (inventory.Inventory, error) {
	inv, err := uc.repo.GetOneInventory(ctx, id)
	if err != nil {
		return inventory.Inventory{}, err
	}
	if inv.ID == "" {
		return inventory.Inventory{}, inventory.ErrNotFound
	}
	if !canManage(sc, inv) {
		return inventory.Inventory{}, inventory.ErrForbidden
	}
	return inv, nil
}

// detail assembles the full detail view of an inventory.
func (uc *implUseCase) detail(ctx context.Context, inv inventory.Inventory) (inventory.DetailOutput, error) {
	creator, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: inv.CreatorID})
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	itemCount, err := uc.repo.CountItems(ctx, inv.ID)
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	fields, err := uc.repo.ListFields(ctx, inv.ID)
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	tags, err := uc.repo.ListTags(ctx, inv.ID)
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	grants, err := uc.repo.ListAccessGrants(ctx, inv.ID)
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	return inventory.DetailOutput{
		Summary: inventory.Summary{
			Inventory: inv,
			Creator: inventory.CreatorInfo{
				ID:    creator.ID,
				Name:  creator.Name,
				Email: creator.Email,
				Image: creator.Image,
			},
			ItemCount: itemCount,
		},
		Fields: fields,
		Tags:   tags,
		Grants: grants,
	}, nil
}

// Create creates a new inventory owned by the caller, with the default
// custom ID format.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input inventory.CreateInput) (inventory.DetailOutput, error) {
	format, err := json.Marshal(customid.DefaultFormat())
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	inv, err := uc.repo.CreateInventory(ctx, repo.CreateInventoryOptions{
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		IsPublic:       input.IsPublic,
		CreatorID:      sc.UserID,
		CustomIDFormat: format,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inventory/usecase.Create: %v", err)
		return inventory.DetailOutput{}, err
	}

	return uc.detail(ctx, inv)
}

// List returns all inventories, newest first.
func (uc *implUseCase) List(ctx context.Context) (inventory.ListOutput, error) {
	summaries, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{Limit: defaultListLimit})
	if err != nil {
		return inventory.ListOutput{}, err
	}
	return inventory.ListOutput{Inventories: summaries, Total: len(summaries)}, nil
}

// Detail returns the full view of one inventory.
func (uc *implUseCase) Detail(ctx context.Context, id string) (inventory.DetailOutput, error) {
	inv, err := uc.repo.GetOneInventory(ctx, id)
	if err != nil {
		return inventory.DetailOutput{}, err
	}
	if inv.ID == "" {
		return inventory.DetailOutput{}, inventory.ErrNotFound
	}
	return uc.detail(ctx, inv)
}

// Update applies a guarded settings update. When input.Version is set it must
// match the version the caller last observed; a mismatch rejects the write
// before anything is sent to the store. The store-level conditional write
// closes the remaining race window.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input inventory.UpdateInput) (inventory.DetailOutput, error) {
	inv, err := uc.getManaged(ctx, sc, input.ID)
	if err != nil {
		return inventory.DetailOutput{}, err
	}

	if input.Version != nil && *input.Version != inv.Version {
		return inventory.DetailOutput{}, inventory.ErrVersionConflict
	}

	updated, err := uc.repo.UpdateInventory(ctx, repo.UpdateInventoryOptions{
		ID:              inv.ID,
		ExpectedVersion: inv.Version,
		Title:           &input.Title,
		Description:     &input.Description,
		Category:        &input.Category,
		IsPublic:        &input.IsPublic,
	})
	if err != nil {
		return inventory.DetailOutput{}, uc.mapUpdateErr(ctx, "Update", err)
	}

	return uc.detail(ctx, updated)
}

// Delete removes an inventory and everything under it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getManaged(ctx, sc, id); err != nil {
		return err
	}
	return uc.repo.DeleteInventory(ctx, id)
}

// mapUpdateErr converts store-level guard errors to domain errors.
func (uc *implUseCase) mapUpdateErr(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, repo.ErrVersionConflict):
		return inventory.ErrVersionConflict
	case errors.Is(err, repo.ErrRowNotFound):
		return inventory.ErrNotFound
	default:
		uc.l.Errorf(ctx, "inventory/usecase.%s: %v", method, err)
		return err
	}
}
