package mysql

import (
	"context"

	repo "inventory-hub/internal/inventory/repository"
)

// ListItemFieldRows streams the raw typed field columns of every item in an
// inventory, for aggregation in the usecase layer.
func (r *implRepository) ListItemFieldRows(ctx context.Context, inventoryID string) ([]repo.ItemFieldRow, error) {
	const query = `
		SELECT string1, string2, string3,
		       text1, text2, text3,
		       num1, num2, num3,
		       link1, link2, link3,
		       bool1, bool2, bool3
		FROM items
		WHERE inventory_id = ?`

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItemFieldRows"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []repo.ItemFieldRow
	for rows.Next() {
		var row repo.ItemFieldRow
		if err := rows.Scan(
			&row.Strings[0], &row.Strings[1], &row.Strings[2],
			&row.Texts[0], &row.Texts[1], &row.Texts[2],
			&row.Numbers[0], &row.Numbers[1], &row.Numbers[2],
			&row.Links[0], &row.Links[1], &row.Links[2],
			&row.Bools[0], &row.Bools[1], &row.Bools[2],
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, row)
	}
	return out, nil
}
