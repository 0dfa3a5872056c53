package search

import "context"

type UseCase interface {
	// Search matches inventories (title, description, category) and items
	// (custom ID, string fields). Queries shorter than 2 characters return
	// an empty result without touching the store.
	Search(ctx context.Context, query string) (Output, error)
}
