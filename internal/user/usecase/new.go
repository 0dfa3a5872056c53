package usecase

import (
	"time"

	"inventory-hub/internal/user"
	"inventory-hub/internal/user/repository"
	"inventory-hub/pkg/log"
	"inventory-hub/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo     repository.Repository
	sessions user.SessionStore
	oauth    user.OAuthProvider // nil when Google sign-in is not configured
	jwt      scope.Manager
	tokenTTL time.Duration
	l        log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, sessions user.SessionStore, oauth user.OAuthProvider, jwt scope.Manager, tokenTTL time.Duration, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		sessions: sessions,
		oauth:    oauth,
		jwt:      jwt,
		tokenTTL: tokenTTL,
		l:        l,
	}
}
