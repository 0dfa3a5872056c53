package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
)

// CreateAccessGrant inserts a write-access grant for a user on an inventory.
// The (inventory_id, user_id) unique key rejects duplicate grants.
func (r *implRepository) CreateAccessGrant(ctx context.Context, inventoryID, userID string) (inventory.AccessGrant, error) {
	const query = `
		INSERT INTO inventory_access (id, inventory_id, user_id, created_at)
		VALUES (?, ?, ?, NOW())`

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, inventoryID, userID); err != nil {
		if isDuplicateKey(err) {
			return inventory.AccessGrant{}, repo.ErrDuplicateLink
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAccessGrant"), err)
		return inventory.AccessGrant{}, repo.ErrFailedToInsert
	}

	return r.GetOneAccessGrant(ctx, repo.GetOneAccessGrantOptions{ID: id})
}

// GetOneAccessGrant fetches a single grant by ID or by (inventory, user) pair.
// Returns zero-value AccessGrant (ID == "") when not found.
func (r *implRepository) GetOneAccessGrant(ctx context.Context, opt repo.GetOneAccessGrantOptions) (inventory.AccessGrant, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "a.id = ?")
		args = append(args, opt.ID)
	}
	if opt.InventoryID != "" {
		conditions = append(conditions, "a.inventory_id = ?")
		args = append(args, opt.InventoryID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "a.user_id = ?")
		args = append(args, opt.UserID)
	}
	if len(conditions) == 0 {
		return inventory.AccessGrant{}, repo.ErrFailedToGet
	}

	query := `
		SELECT a.id, a.inventory_id, a.user_id, u.name, u.email, u.image, a.created_at
		FROM inventory_access a
		JOIN users u ON u.id = a.user_id
		WHERE ` + strings.Join(conditions, " AND ") + ` LIMIT 1`

	var g inventory.AccessGrant
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&g.ID, &g.InventoryID, &g.UserID, &g.User.Name, &g.User.Email, &g.User.Image, &g.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return inventory.AccessGrant{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAccessGrant"), err)
		return inventory.AccessGrant{}, repo.ErrFailedToGet
	}
	g.User.ID = g.UserID
	return g, nil
}

// ListAccessGrants returns all grants on an inventory with grantee info.
func (r *implRepository) ListAccessGrants(ctx context.Context, inventoryID string) ([]inventory.AccessGrant, error) {
	const query = `
		SELECT a.id, a.inventory_id, a.user_id, u.name, u.email, u.image, a.created_at
		FROM inventory_access a
		JOIN users u ON u.id = a.user_id
		WHERE a.inventory_id = ?
		ORDER BY a.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAccessGrants"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var grants []inventory.AccessGrant
	for rows.Next() {
		var g inventory.AccessGrant
		if err := rows.Scan(&g.ID, &g.InventoryID, &g.UserID, &g.User.Name, &g.User.Email, &g.User.Image, &g.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		g.User.ID = g.UserID
		grants = append(grants, g)
	}
	return grants, nil
}

// DeleteAccessGrant removes a grant by ID.
func (r *implRepository) DeleteAccessGrant(ctx context.Context, grantID string) error {
	const query = `DELETE FROM inventory_access WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, grantID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAccessGrant"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
