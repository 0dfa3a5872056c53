package inventory

import (
	"context"

	"inventory-hub/internal/model"
	"inventory-hub/pkg/customid"
)

type UseCase interface {
	// Inventory CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (DetailOutput, error)
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Custom ID format (full replace, owner/admin only)
	ReplaceFormat(ctx context.Context, sc model.Scope, id string, format []customid.Element) (DetailOutput, error)

	// Custom field definitions (full replace, owner/admin only)
	ReplaceFields(ctx context.Context, sc model.Scope, id string, fields []FieldInput) (DetailOutput, error)

	// Access grants
	GrantAccess(ctx context.Context, sc model.Scope, id, userID string) (AccessGrant, error)
	RevokeAccess(ctx context.Context, sc model.Scope, id, grantID string) error

	// Tags
	AddTag(ctx context.Context, sc model.Scope, id, tagName string) (Tag, error)
	RemoveTag(ctx context.Context, sc model.Scope, id, tagID string) error
	SearchTags(ctx context.Context, prefix string) ([]TagWithCount, error)
	ListByTag(ctx context.Context, tagName string) (ListOutput, error)

	// Aggregates
	Stats(ctx context.Context, id string) (StatsOutput, error)
	Home(ctx context.Context) (HomeOutput, error)
	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)
}
