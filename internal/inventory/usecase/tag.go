package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
	"inventory-hub/internal/model"
)

// AddTag attaches a tag to the inventory, creating the tag if it does not
// exist yet. Tag names are stored lowercase.
func (uc *implUseCase) AddTag(ctx context.Context, sc model.Scope, id, tagName string) (inventory.Tag, error) {
	inv, err := uc.getManaged(ctx, sc, id)
	if err != nil {
		return inventory.Tag{}, err
	}

	name := strings.ToLower(strings.TrimSpace(tagName))
	if name == "" {
		return inventory.Tag{}, inventory.ErrTagNotFound
	}

	tag, err := uc.repo.UpsertTag(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "inventory/usecase.AddTag: %v", err)
		return inventory.Tag{}, err
	}

	if err := uc.repo.LinkTag(ctx, inv.ID, tag.ID); err != nil {
		if errors.Is(err, repo.ErrDuplicateLink) {
			return inventory.Tag{}, inventory.ErrTagAlreadyAdded
		}
		uc.l.Errorf(ctx, "inventory/usecase.AddTag: %v", err)
		return inventory.Tag{}, err
	}
	return tag, nil
}

// RemoveTag detaches a tag from the inventory.
func (uc *implUseCase) RemoveTag(ctx context.Context, sc model.Scope, id, tagID string) error {
	inv, err := uc.getManaged(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.UnlinkTag(ctx, inv.ID, tagID); err != nil {
		if errors.Is(err, repo.ErrRowNotFound) {
			return inventory.ErrTagNotFound
		}
		uc.l.Errorf(ctx, "inventory/usecase.RemoveTag: %v", err)
		return err
	}
	return nil
}

// SearchTags returns autocomplete candidates for a tag name prefix.
func (uc *implUseCase) SearchTags(ctx context.Context, prefix string) ([]inventory.TagWithCount, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, nil
	}
	return uc.repo.SearchTags(ctx, prefix, tagSearchLimit)
}

// ListByTag returns the inventories carrying the given tag.
func (uc *implUseCase) ListByTag(ctx context.Context, tagName string) (inventory.ListOutput, error) {
	summaries, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{
		TagName: strings.ToLower(strings.TrimSpace(tagName)),
		Limit:   defaultListLimit,
	})
	if err != nil {
		return inventory.ListOutput{}, err
	}
	return inventory.ListOutput{Inventories: summaries, Total: len(summaries)}, nil
}
