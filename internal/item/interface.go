package item

import (
	"context"

	"inventory-hub/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Detail, error)
	List(ctx context.Context, sc model.Scope, inventoryID string) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (Detail, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (Detail, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// DeleteBulk removes the given items of one inventory in a single call.
	DeleteBulk(ctx context.Context, sc model.Scope, inventoryID string, ids []string) error

	// Likes
	Like(ctx context.Context, sc model.Scope, id string) (Detail, error)
	Unlike(ctx context.Context, sc model.Scope, id string) (Detail, error)
}
