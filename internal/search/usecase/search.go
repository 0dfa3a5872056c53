package usecase

import (
	"context"
	"strings"

	"inventory-hub/internal/search"
)

// Search runs the query against both stores.
func (uc *implUseCase) Search(ctx context.Context, query string) (search.Output, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return search.Output{}, nil
	}

	inventories, err := uc.inventories.SearchInventories(ctx, query, resultLimit)
	if err != nil {
		uc.l.Errorf(ctx, "search/usecase.Search inventories: %v", err)
		return search.Output{}, err
	}

	items, err := uc.items.SearchItems(ctx, query, resultLimit)
	if err != nil {
		uc.l.Errorf(ctx, "search/usecase.Search items: %v", err)
		return search.Output{}, err
	}

	return search.Output{Inventories: inventories, Items: items}, nil
}
