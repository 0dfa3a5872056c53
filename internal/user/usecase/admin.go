package usecase

import (
	"context"

	"inventory-hub/internal/model"
	"inventory-hub/internal/user"
	repo "inventory-hub/internal/user/repository"
)

// AdminListUsers returns all accounts with aggregate counts. Admin only.
func (uc *implUseCase) AdminListUsers(ctx context.Context, sc model.Scope) (user.ListUsersOutput, error) {
	if !sc.IsAdmin() {
		return user.ListUsersOutput{}, user.ErrForbidden
	}

	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdminListUsers: %v", err)
		return user.ListUsersOutput{}, err
	}

	out := user.ListUsersOutput{Users: users, Total: len(users)}
	for _, au := range users {
		if au.User.Role == model.RoleAdmin {
			out.Admins++
		}
	}
	return out, nil
}

// AdminSetRole promotes or demotes an account. Admin only. An admin may
// demote themselves; the next request with the stale token still carries the
// old role until it expires, which matches how the session provider behaved.
func (uc *implUseCase) AdminSetRole(ctx context.Context, sc model.Scope, userID string, role model.Role) (user.DetailUserOutput, error) {
	if !sc.IsAdmin() {
		return user.DetailUserOutput{}, user.ErrForbidden
	}
	return uc.adminUpdate(ctx, userID, repo.UpdateUserOptions{ID: userID, Role: &role})
}

// AdminSetBlocked blocks or unblocks an account. Admin only.
func (uc *implUseCase) AdminSetBlocked(ctx context.Context, sc model.Scope, userID string, blocked bool) (user.DetailUserOutput, error) {
	if !sc.IsAdmin() {
		return user.DetailUserOutput{}, user.ErrForbidden
	}
	return uc.adminUpdate(ctx, userID, repo.UpdateUserOptions{ID: userID, Blocked: &blocked})
}

// AdminDeleteUser permanently removes an account. Admin only.
func (uc *implUseCase) AdminDeleteUser(ctx context.Context, sc model.Scope, userID string) error {
	if !sc.IsAdmin() {
		return user.ErrForbidden
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdminDeleteUser GetOneUser: %v", err)
		return err
	}
	if existing.ID == "" {
		return user.ErrNotFound
	}

	return uc.repo.DeleteUser(ctx, userID)
}

func (uc *implUseCase) adminUpdate(ctx context.Context, userID string, opt repo.UpdateUserOptions) (user.DetailUserOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.adminUpdate GetOneUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	if existing.ID == "" {
		return user.DetailUserOutput{}, user.ErrNotFound
	}

	updated, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.adminUpdate UpdateUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	return user.DetailUserOutput{User: updated}, nil
}
