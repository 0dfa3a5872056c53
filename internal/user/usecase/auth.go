package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"inventory-hub/internal/model"
	"inventory-hub/internal/user"
	repo "inventory-hub/internal/user/repository"
)

// Register creates a new account and issues a session token.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register bcrypt: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.AuthOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.issueFor(ctx, created)
}

// Login verifies credentials and issues a session token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" || u.PasswordHash == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.issueFor(ctx, u)
}

// GoogleAuthURL returns the Google consent URL, or "" when not configured.
func (uc *implUseCase) GoogleAuthURL(state string) string {
	if uc.oauth == nil {
		return ""
	}
	return uc.oauth.AuthURL(state)
}

// LoginWithGoogle exchanges the OAuth callback code, finds or creates the
// matching account, and issues a session token.
func (uc *implUseCase) LoginWithGoogle(ctx context.Context, code string) (user.AuthOutput, error) {
	if uc.oauth == nil {
		return user.AuthOutput{}, user.ErrOAuthDisabled
	}

	identity, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoginWithGoogle Exchange: %v", err)
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	email := strings.ToLower(identity.Email)
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoginWithGoogle GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}

	if u.ID == "" {
		u, err = uc.repo.CreateUser(ctx, repo.CreateUserOptions{
			Name:  identity.Name,
			Email: email,
			Image: identity.Image,
			Role:  model.RoleUser,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.LoginWithGoogle CreateUser: %v", err)
			return user.AuthOutput{}, err
		}
	}

	return uc.issueFor(ctx, u)
}

// Logout revokes the caller's current token.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.TokenID == "" {
		return nil
	}
	return uc.sessions.Revoke(ctx, sc.TokenID, uc.tokenTTL)
}

func (uc *implUseCase) issueFor(ctx context.Context, u user.User) (user.AuthOutput, error) {
	token, err := uc.jwt.Issue(model.Scope{UserID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		uc.l.Errorf(ctx, "uc issue token: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: u}, nil
}
