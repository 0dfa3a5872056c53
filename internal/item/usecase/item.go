package usecase

import (
	"context"
	"errors"

	"inventory-hub/internal/inventory"
	invRepo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/item"
	repo "inventory-hub/internal/item/repository"
	"inventory-hub/internal/model"
)

// getInventory fetches the inventory or reports it missing.
func (uc *implUseCase) getInventory(ctx context.Context, id string) (inventory.Inventory, error) {
	inv, err := uc.inventories.GetOneInventory(ctx, id)
	if err != nil {
		return inventory.Inventory{}, err
	}
	if inv.ID == "" {
		return inventory.Inventory{}, item.ErrInventoryNotFound
	}
	return inv, nil
}

// canWriteItems reports whether sc may add or change items of inv: admins,
// the creator, grantees, and (for public inventories) any authenticated
// caller.
func (uc *implUseCase) canWriteItems(ctx context.Context, sc model.Scope, inv inventory.Inventory) (bool, error) {
	if sc.UserID == "" {
		return false, nil
	}
	if sc.IsAdmin() || inv.CreatorID == sc.UserID || inv.IsPublic {
		return true, nil
	}
	grant, err := uc.inventories.GetOneAccessGrant(ctx, invRepo.GetOneAccessGrantOptions{
		InventoryID: inv.ID,
		UserID:      sc.UserID,
	})
	if err != nil {
		return false, err
	}
	return grant.ID != "", nil
}

// Create adds an item to an inventory. When input.CustomID is empty the ID
// is generated from the inventory's format, seeded by the latest item's
// custom ID. The store's unique key is the authority on uniqueness; for
// generated IDs a duplicate triggers regeneration against the fresh latest
// item, for caller-supplied IDs it is terminal.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateInput) (item.Detail, error) {
	inv, err := uc.getInventory(ctx, input.InventoryID)
	if err != nil {
		return item.Detail{}, err
	}

	ok, err := uc.canWriteItems(ctx, sc, inv)
	if err != nil {
		return item.Detail{}, err
	}
	if !ok {
		return item.Detail{}, item.ErrForbidden
	}

	generated := input.CustomID == ""
	attempts := 1
	if generated {
		attempts = maxGenerateAttempts
	}

	for i := 0; i < attempts; i++ {
		customID := input.CustomID
		if generated {
			latest, err := uc.repo.GetLatestItem(ctx, inv.ID)
			if err != nil {
				return item.Detail{}, err
			}
			customID = uc.gen.Generate(inv.CustomIDFormat, latest.CustomID)
		}

		created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
			InventoryID: inv.ID,
			CustomID:    customID,
			CreatorID:   sc.UserID,
			Values:      input.Values,
		})
		if errors.Is(err, repo.ErrDuplicateCustomID) {
			if generated && i < attempts-1 {
				continue
			}
			return item.Detail{}, item.ErrDuplicateCustomID
		}
		if err != nil {
			uc.l.Errorf(ctx, "item/usecase.Create: %v", err)
			return item.Detail{}, err
		}
		return item.Detail{Item: created}, nil
	}

	return item.Detail{}, item.ErrDuplicateCustomID
}

// List returns the items of an inventory with like counters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, inventoryID string) (item.ListOutput, error) {
	if _, err := uc.getInventory(ctx, inventoryID); err != nil {
		return item.ListOutput{}, err
	}

	items, err := uc.repo.ListItems(ctx, inventoryID)
	if err != nil {
		return item.ListOutput{}, err
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	counts, err := uc.repo.CountLikesBulk(ctx, ids)
	if err != nil {
		return item.ListOutput{}, err
	}
	liked, err := uc.repo.ListLikedItemIDs(ctx, sc.UserID, ids)
	if err != nil {
		return item.ListOutput{}, err
	}

	details := make([]item.Detail, 0, len(items))
	for _, it := range items {
		details = append(details, item.Detail{
			Item:      it,
			LikeCount: counts[it.ID],
			LikedByMe: liked[it.ID],
		})
	}
	return item.ListOutput{Items: details, Total: len(details)}, nil
}

// Detail returns one item with its like counters.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (item.Detail, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		return item.Detail{}, err
	}
	if it.ID == "" {
		return item.Detail{}, item.ErrNotFound
	}
	return uc.withLikes(ctx, sc, it)
}

// Update applies a guarded item update, mirroring the inventory flow: a
// caller-observed version is pre-checked when present, and the store-level
// conditional write closes the race window. Changing the custom ID can also
// fail as a duplicate, which is a distinct outcome from a version conflict.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateInput) (item.Detail, error) {
	it, err := uc.repo.GetOneItem(ctx, input.ID)
	if err != nil {
		return item.Detail{}, err
	}
	if it.ID == "" {
		return item.Detail{}, item.ErrNotFound
	}

	inv, err := uc.getInventory(ctx, it.InventoryID)
	if err != nil {
		return item.Detail{}, err
	}
	ok, err := uc.canWriteItems(ctx, sc, inv)
	if err != nil {
		return item.Detail{}, err
	}
	if !ok {
		return item.Detail{}, item.ErrForbidden
	}

	if input.Version != nil && *input.Version != it.Version {
		return item.Detail{}, item.ErrVersionConflict
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:              it.ID,
		ExpectedVersion: it.Version,
		CustomID:        input.CustomID,
		Values:          input.Values,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrVersionConflict):
			return item.Detail{}, item.ErrVersionConflict
		case errors.Is(err, repo.ErrRowNotFound):
			return item.Detail{}, item.ErrNotFound
		case errors.Is(err, repo.ErrDuplicateCustomID):
			return item.Detail{}, item.ErrDuplicateCustomID
		default:
			uc.l.Errorf(ctx, "item/usecase.Update: %v", err)
			return item.Detail{}, err
		}
	}

	return uc.withLikes(ctx, sc, updated)
}

// Delete removes a single item. Likes go with it via the store's cascade.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		return err
	}
	if it.ID == "" {
		return item.ErrNotFound
	}

	inv, err := uc.getInventory(ctx, it.InventoryID)
	if err != nil {
		return err
	}
	ok, err := uc.canWriteItems(ctx, sc, inv)
	if err != nil {
		return err
	}
	if !ok {
		return item.ErrForbidden
	}
	return uc.repo.DeleteItems(ctx, it.InventoryID, []string{it.ID})
}

// DeleteBulk removes the given items of one inventory.
func (uc *implUseCase) DeleteBulk(ctx context.Context, sc model.Scope, inventoryID string, ids []string) error {
	inv, err := uc.getInventory(ctx, inventoryID)
	if err != nil {
		return err
	}
	ok, err := uc.canWriteItems(ctx, sc, inv)
	if err != nil {
		return err
	}
	if !ok {
		return item.ErrForbidden
	}
	return uc.repo.DeleteItems(ctx, inventoryID, ids)
}

// Like records a like; liking twice is idempotent.
func (uc *implUseCase) Like(ctx context.Context, sc model.Scope, id string) (item.Detail, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		return item.Detail{}, err
	}
	if it.ID == "" {
		return item.Detail{}, item.ErrNotFound
	}

	if err := uc.repo.CreateLike(ctx, it.ID, sc.UserID); err != nil && !errors.Is(err, repo.ErrDuplicateLike) {
		uc.l.Errorf(ctx, "item/usecase.Like: %v", err)
		return item.Detail{}, err
	}
	return uc.withLikes(ctx, sc, it)
}

// Unlike removes a like; removing a missing like is a no-op.
func (uc *implUseCase) Unlike(ctx context.Context, sc model.Scope, id string) (item.Detail, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		return item.Detail{}, err
	}
	if it.ID == "" {
		return item.Detail{}, item.ErrNotFound
	}

	if err := uc.repo.DeleteLike(ctx, it.ID, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "item/usecase.Unlike: %v", err)
		return item.Detail{}, err
	}
	return uc.withLikes(ctx, sc, it)
}

func (uc *implUseCase) withLikes(ctx context.Context, sc model.Scope, it item.Item) (item.Detail, error) {
	count, err := uc.repo.CountLikes(ctx, it.ID)
	if err != nil {
		return item.Detail{}, err
	}
	likedByMe := false
	if sc.UserID != "" {
		likedByMe, err = uc.repo.HasLiked(ctx, it.ID, sc.UserID)
		if err != nil {
			return item.Detail{}, err
		}
	}
	return item.Detail{Item: it, LikeCount: count, LikedByMe: likedByMe}, nil
}
