package usecase

import (
	"context"
	"strings"

	"inventory-hub/internal/comment"
	repo "inventory-hub/internal/comment/repository"
	"inventory-hub/internal/model"
)

// Create posts a comment on an inventory's discussion thread. Any
// authenticated user may post.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input comment.CreateInput) (comment.Comment, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return comment.Comment{}, comment.ErrEmptyBody
	}

	inv, err := uc.inventories.GetOneInventory(ctx, input.InventoryID)
	if err != nil {
		return comment.Comment{}, err
	}
	if inv.ID == "" {
		return comment.Comment{}, comment.ErrInventoryNotFound
	}

	cm, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		InventoryID: inv.ID,
		AuthorID:    sc.UserID,
		Body:        body,
	})
	if err != nil {
		uc.l.Errorf(ctx, "comment/usecase.Create: %v", err)
		return comment.Comment{}, err
	}
	return cm, nil
}

// List returns the discussion thread of an inventory, oldest first.
func (uc *implUseCase) List(ctx context.Context, inventoryID string) (comment.ListOutput, error) {
	inv, err := uc.inventories.GetOneInventory(ctx, inventoryID)
	if err != nil {
		return comment.ListOutput{}, err
	}
	if inv.ID == "" {
		return comment.ListOutput{}, comment.ErrInventoryNotFound
	}

	comments, err := uc.repo.ListComments(ctx, inventoryID)
	if err != nil {
		return comment.ListOutput{}, err
	}
	return comment.ListOutput{Comments: comments, Total: len(comments)}, nil
}

// Delete removes a comment. Only the author and admins may delete.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	cm, err := uc.repo.GetOneComment(ctx, id)
	if err != nil {
		return err
	}
	if cm.ID == "" {
		return comment.ErrNotFound
	}
	if !sc.IsAdmin() && cm.Author.ID != sc.UserID {
		return comment.ErrForbidden
	}
	return uc.repo.DeleteComment(ctx, cm.ID)
}
