package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventory-hub/internal/item"
	repo "inventory-hub/internal/item/repository"
)

const itemColumns = `id, inventory_id, custom_id, creator_id,
	string1, string2, string3, text1, text2, text3,
	num1, num2, num3, link1, link2, link3,
	bool1, bool2, bool3, version, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (item.Item, error) {
	var it item.Item
	v := &it.Values
	err := row.Scan(
		&it.ID, &it.InventoryID, &it.CustomID, &it.CreatorID,
		&v.Strings[0], &v.Strings[1], &v.Strings[2],
		&v.Texts[0], &v.Texts[1], &v.Texts[2],
		&v.Numbers[0], &v.Numbers[1], &v.Numbers[2],
		&v.Links[0], &v.Links[1], &v.Links[2],
		&v.Bools[0], &v.Bools[1], &v.Bools[2],
		&it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func valueArgs(v item.FieldValues) []any {
	return []any{
		v.Strings[0], v.Strings[1], v.Strings[2],
		v.Texts[0], v.Texts[1], v.Texts[2],
		v.Numbers[0], v.Numbers[1], v.Numbers[2],
		v.Links[0], v.Links[1], v.Links[2],
		v.Bools[0], v.Bools[1], v.Bools[2],
	}
}

// CreateItem inserts a new item (version 1). The (inventory_id, custom_id)
// unique key is the authority on ID uniqueness.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (id, inventory_id, custom_id, creator_id,
			string1, string2, string3, text1, text2, text3,
			num1, num2, num3, link1, link2, link3,
			bool1, bool2, bool3, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, NOW(), NOW())`

	id := uuid.NewString()
	args := append([]any{id, opt.InventoryID, opt.CustomID, opt.CreatorID}, valueArgs(opt.Values)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return item.Item{}, repo.ErrDuplicateCustomID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	return r.GetOneItem(ctx, id)
}

// GetOneItem retrieves a single item by ID. Returns zero-value Item
// (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, id string) (item.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = ? LIMIT 1", itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns all items of an inventory, newest first.
func (r *implRepository) ListItems(ctx context.Context, inventoryID string) ([]item.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE inventory_id = ? ORDER BY created_at DESC", itemColumns)

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	return items, nil
}

// GetLatestItem returns the most recently created item of the inventory,
// zero-value when the inventory has no items yet.
func (r *implRepository) GetLatestItem(ctx context.Context, inventoryID string) (item.Item, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM items WHERE inventory_id = ? ORDER BY created_at DESC, id DESC LIMIT 1", itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, inventoryID))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLatestItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// UpdateItem applies a guarded update: the write succeeds only while the
// stored version still equals ExpectedVersion, and bumps the version by
// exactly 1 in the same statement.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	sets := []string{
		"string1 = ?", "string2 = ?", "string3 = ?",
		"text1 = ?", "text2 = ?", "text3 = ?",
		"num1 = ?", "num2 = ?", "num3 = ?",
		"link1 = ?", "link2 = ?", "link3 = ?",
		"bool1 = ?", "bool2 = ?", "bool3 = ?",
	}
	args := valueArgs(opt.Values)
	if opt.CustomID != nil {
		sets = append(sets, "custom_id = ?")
		args = append(args, *opt.CustomID)
	}
	sets = append(sets, "version = version + 1", "updated_at = ?")
	args = append(args, time.Now(), opt.ID, opt.ExpectedVersion)

	query := fmt.Sprintf("UPDATE items SET %s WHERE id = ? AND version = ?", strings.Join(sets, ", "))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateKey(err) {
			return item.Item{}, repo.ErrDuplicateCustomID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		existing, err := r.GetOneItem(ctx, opt.ID)
		if err != nil {
			return item.Item{}, err
		}
		if existing.ID == "" {
			return item.Item{}, repo.ErrRowNotFound
		}
		return item.Item{}, repo.ErrVersionConflict
	}

	return r.GetOneItem(ctx, opt.ID)
}

// DeleteItems removes the given items, constrained to one inventory.
func (r *implRepository) DeleteItems(ctx context.Context, inventoryID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?, ", len(ids)-1) + "?"
	query := fmt.Sprintf("DELETE FROM items WHERE inventory_id = ? AND id IN (%s)", placeholders)

	args := make([]any, 0, len(ids)+1)
	args = append(args, inventoryID)
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItems"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SearchItems matches the custom ID and the string-ish field columns.
func (r *implRepository) SearchItems(ctx context.Context, query string, limit int) ([]item.Item, error) {
	pattern := "%" + query + "%"
	q := fmt.Sprintf(`
		SELECT %s FROM items
		WHERE custom_id LIKE ?
		   OR string1 LIKE ? OR string2 LIKE ? OR string3 LIKE ?
		   OR text1 LIKE ? OR text2 LIKE ? OR text3 LIKE ?
		ORDER BY created_at DESC
		LIMIT %d`, itemColumns, limit)

	rows, err := r.db.QueryContext(ctx, q, pattern, pattern, pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	return items, nil
}
