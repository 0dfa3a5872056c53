package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventory-hub/internal/user"
	repo "inventory-hub/internal/user/repository"
)

const userColumns = `id, name, email, password_hash, image, role, blocked, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Image,
		&u.Role, &u.Blocked, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, image, role, blocked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, FALSE, NOW(), NOW())`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, id, opt.Name, opt.Email, opt.PasswordHash, opt.Image, opt.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return user.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}

	return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns a zero-value User (ID == "") when not found, without an error.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opt.Email)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, strings.Join(conditions, " AND "))

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return user.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns all users with their owned-inventory counts, newest first.
func (r *implRepository) ListUsers(ctx context.Context) ([]user.AdminUser, error) {
	const query = `
		SELECT u.id, u.name, u.email, u.password_hash, u.image, u.role, u.blocked, u.created_at, u.updated_at,
		       COUNT(i.id) AS inventory_count
		FROM users u
		LEFT JOIN inventories i ON i.creator_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []user.AdminUser
	for rows.Next() {
		var au user.AdminUser
		if err := rows.Scan(
			&au.User.ID, &au.User.Name, &au.User.Email, &au.User.PasswordHash, &au.User.Image,
			&au.User.Role, &au.User.Blocked, &au.User.CreatedAt, &au.User.UpdatedAt,
			&au.InventoryCount,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, au)
	}
	return users, nil
}

// UpdateUser applies a partial update and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	var sets []string
	var args []any
	if opt.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *opt.Name)
	}
	if opt.Image != nil {
		sets = append(sets, "image = ?")
		args = append(args, *opt.Image)
	}
	if opt.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *opt.Role)
	}
	if opt.Blocked != nil {
		sets = append(sets, "blocked = ?")
		args = append(args, *opt.Blocked)
	}
	if len(sets) == 0 {
		return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: opt.ID})
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now(), opt.ID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}

	return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: opt.ID})
}

// DeleteUser removes a User by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountInventories returns the number of inventories owned by a user.
func (r *implRepository) CountInventories(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM inventories WHERE creator_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountInventories"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}
