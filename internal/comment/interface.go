package comment

import (
	"context"

	"inventory-hub/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Comment, error)
	List(ctx context.Context, inventoryID string) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
