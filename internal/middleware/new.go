package middleware

import (
	"inventory-hub/internal/user"
	userRepo "inventory-hub/internal/user/repository"
	"inventory-hub/pkg/log"
	"inventory-hub/pkg/scope"
)

type Middleware struct {
	l               log.Logger
	jwtManager      scope.Manager
	sessions        user.SessionStore
	users           userRepo.Repository
	rateLimitPerMin int
}

func New(l log.Logger, jwtManager scope.Manager, sessions user.SessionStore, users userRepo.Repository, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		jwtManager:      jwtManager,
		sessions:        sessions,
		users:           users,
		rateLimitPerMin: rateLimitPerMin,
	}
}
