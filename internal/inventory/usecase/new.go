package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"inventory-hub/internal/inventory"
	"inventory-hub/internal/inventory/repository"
	userRepo "inventory-hub/internal/user/repository"
	"inventory-hub/pkg/log"
)

const (
	defaultListLimit = 100
	homeLatestLimit  = 10
	homePopularLimit = 5
	tagSearchLimit   = 20
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users userRepo.Repository
	stats *expirable.LRU[string, inventory.StatsOutput]
	l     log.Logger
}

// New creates a new inventory UseCase implementation. Statistics are cached
// in an expiring LRU keyed by inventory ID and version, so any accepted write
// (which bumps the version) naturally misses the cache.
func New(repo repository.Repository, users userRepo.Repository, cacheSize int, cacheTTL time.Duration, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		stats: expirable.NewLRU[string, inventory.StatsOutput](cacheSize, nil, cacheTTL),
		l:     l,
	}
}
