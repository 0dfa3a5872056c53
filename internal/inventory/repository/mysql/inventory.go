package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
	"inventory-hub/pkg/customid"
)

const inventoryColumns = `id, title, description, category, is_public, creator_id, custom_id_format, version, created_at, updated_at`

func scanInventory(row interface{ Scan(...any) error }) (inventory.Inventory, error) {
	var inv inventory.Inventory
	var rawFormat []byte
	err := row.Scan(
		&inv.ID, &inv.Title, &inv.Description, &inv.Category, &inv.IsPublic,
		&inv.CreatorID, &rawFormat, &inv.Version, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return inventory.Inventory{}, err
	}
	if len(rawFormat) > 0 {
		var format []customid.Element
		if err := json.Unmarshal(rawFormat, &format); err == nil {
			inv.CustomIDFormat = format
		}
	}
	return inv, nil
}

// CreateInventory inserts a new Inventory row (version 1) and returns it.
func (r *implRepository) CreateInventory(ctx context.Context, opt repo.CreateInventoryOptions) (inventory.Inventory, error) {
	const query = `
		INSERT INTO inventories (id, title, description, category, is_public, creator_id, custom_id_format, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, NOW(), NOW())`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id, opt.Title, opt.Description, opt.Category, opt.IsPublic, opt.CreatorID, opt.CustomIDFormat,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInventory"), err)
		return inventory.Inventory{}, repo.ErrFailedToInsert
	}

	return r.GetOneInventory(ctx, id)
}

// GetOneInventory retrieves a single Inventory by ID.
// Returns a zero-value Inventory (ID == "") when not found, without an error.
func (r *implRepository) GetOneInventory(ctx context.Context, id string) (inventory.Inventory, error) {
	query := fmt.Sprintf("SELECT %s FROM inventories WHERE id = ? LIMIT 1", inventoryColumns)

	inv, err := scanInventory(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return inventory.Inventory{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInventory"), err)
		return inventory.Inventory{}, repo.ErrFailedToGet
	}
	return inv, nil
}

// ListInventories returns inventory summaries with creator and item count.
func (r *implRepository) ListInventories(ctx context.Context, opt repo.ListInventoriesOptions) ([]inventory.Summary, error) {
	var conditions []string
	var args []any

	if opt.CreatorID != "" {
		conditions = append(conditions, "i.creator_id = ?")
		args = append(args, opt.CreatorID)
	}
	if opt.GrantedTo != "" {
		conditions = append(conditions, "i.id IN (SELECT inventory_id FROM inventory_access WHERE user_id = ?)")
		args = append(args, opt.GrantedTo)
	}
	if opt.TagName != "" {
		conditions = append(conditions,
			"i.id IN (SELECT it.inventory_id FROM inventory_tags it JOIN tags t ON t.id = it.tag_id WHERE t.name = ?)")
		args = append(args, opt.TagName)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "i.created_at DESC"
	if opt.OrderBy == "item_count DESC" {
		orderBy = "item_count DESC"
	}

	limit := ""
	if opt.Limit > 0 {
		limit = fmt.Sprintf("LIMIT %d", opt.Limit)
	}

	query := fmt.Sprintf(`
		SELECT %s,
		       u.id, u.name, u.email, u.image,
		       (SELECT COUNT(*) FROM items it WHERE it.inventory_id = i.id) AS item_count
		FROM inventories i
		JOIN users u ON u.id = i.creator_id
		%s
		ORDER BY %s
		%s`, prefixColumns("i", inventoryColumns), where, orderBy, limit)

	return r.querySummaries(ctx, "ListInventories", query, args...)
}

// SearchInventories matches title, description, or category.
func (r *implRepository) SearchInventories(ctx context.Context, q string, limit int) ([]inventory.Summary, error) {
	pattern := "%" + q + "%"
	query := fmt.Sprintf(`
		SELECT %s,
		       u.id, u.name, u.email, u.image,
		       (SELECT COUNT(*) FROM items it WHERE it.inventory_id = i.id) AS item_count
		FROM inventories i
		JOIN users u ON u.id = i.creator_id
		WHERE i.title LIKE ? OR i.description LIKE ? OR i.category LIKE ?
		ORDER BY i.created_at DESC
		LIMIT %d`, prefixColumns("i", inventoryColumns), limit)

	return r.querySummaries(ctx, "SearchInventories", query, pattern, pattern, pattern)
}

// UpdateInventory applies a guarded partial update: the write succeeds only
// while the stored version still equals ExpectedVersion, and bumps the
// version by exactly 1 in the same statement.
func (r *implRepository) UpdateInventory(ctx context.Context, opt repo.UpdateInventoryOptions) (inventory.Inventory, error) {
	var sets []string
	var args []any
	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *opt.Category)
	}
	if opt.IsPublic != nil {
		sets = append(sets, "is_public = ?")
		args = append(args, *opt.IsPublic)
	}
	if opt.CustomIDFormat != nil {
		sets = append(sets, "custom_id_format = ?")
		args = append(args, opt.CustomIDFormat)
	}
	sets = append(sets, "version = version + 1", "updated_at = ?")
	args = append(args, time.Now(), opt.ID, opt.ExpectedVersion)

	query := fmt.Sprintf("UPDATE inventories SET %s WHERE id = ? AND version = ?", strings.Join(sets, ", "))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateInventory"), err)
		return inventory.Inventory{}, repo.ErrFailedToUpdate
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Distinguish a vanished row from a lost version race.
		existing, err := r.GetOneInventory(ctx, opt.ID)
		if err != nil {
			return inventory.Inventory{}, err
		}
		if existing.ID == "" {
			return inventory.Inventory{}, repo.ErrRowNotFound
		}
		return inventory.Inventory{}, repo.ErrVersionConflict
	}

	return r.GetOneInventory(ctx, opt.ID)
}

// DeleteInventory removes an Inventory by ID. Dependent rows (items, fields,
// grants, tag links, comments) go with it via FK cascade.
func (r *implRepository) DeleteInventory(ctx context.Context, id string) error {
	const query = `DELETE FROM inventories WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteInventory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountItems returns the number of items in an inventory.
func (r *implRepository) CountItems(ctx context.Context, inventoryID string) (int, error) {
	const query = `SELECT COUNT(*) FROM items WHERE inventory_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, inventoryID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountItems"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}

func (r *implRepository) querySummaries(ctx context.Context, method, query string, args ...any) ([]inventory.Summary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var summaries []inventory.Summary
	for rows.Next() {
		var s inventory.Summary
		var rawFormat []byte
		if err := rows.Scan(
			&s.Inventory.ID, &s.Inventory.Title, &s.Inventory.Description, &s.Inventory.Category,
			&s.Inventory.IsPublic, &s.Inventory.CreatorID, &rawFormat, &s.Inventory.Version,
			&s.Inventory.CreatedAt, &s.Inventory.UpdatedAt,
			&s.Creator.ID, &s.Creator.Name, &s.Creator.Email, &s.Creator.Image,
			&s.ItemCount,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		if len(rawFormat) > 0 {
			json.Unmarshal(rawFormat, &s.Inventory.CustomIDFormat)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
