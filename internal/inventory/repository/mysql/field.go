package mysql

import (
	"context"

	"github.com/google/uuid"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
)

// ListFields returns the field definitions of an inventory ordered by display
// order.
func (r *implRepository) ListFields(ctx context.Context, inventoryID string) ([]inventory.Field, error) {
	const query = `
		SELECT id, inventory_id, kind, slot, title, description, visible_in_table, display_order
		FROM inventory_fields
		WHERE inventory_id = ?
		ORDER BY display_order ASC`

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFields"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var fields []inventory.Field
	for rows.Next() {
		var f inventory.Field
		if err := rows.Scan(
			&f.ID, &f.InventoryID, &f.Kind, &f.Slot, &f.Title,
			&f.Description, &f.VisibleInTable, &f.Order,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// ReplaceFields swaps the full field definition set of an inventory in one
// transaction.
func (r *implRepository) ReplaceFields(ctx context.Context, inventoryID string, fields []repo.FieldOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceFields"), err)
		return repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_fields WHERE inventory_id = ?`, inventoryID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceFields"), err)
		return repo.ErrFailedToUpdate
	}

	const insert = `
		INSERT INTO inventory_fields (id, inventory_id, kind, slot, title, description, visible_in_table, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, f := range fields {
		if _, err := tx.ExecContext(ctx, insert,
			uuid.NewString(), inventoryID, f.Kind, f.Slot, f.Title, f.Description, f.VisibleInTable, f.Order,
		); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceFields"), err)
			return repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceFields"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
