package mysql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"inventory-hub/internal/inventory"
	repo "inventory-hub/internal/inventory/repository"
)

// UpsertTag finds a tag by name or creates it. Tag names are globally unique.
func (r *implRepository) UpsertTag(ctx context.Context, name string) (inventory.Tag, error) {
	var t inventory.Tag
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE name = ? LIMIT 1`, name).Scan(&t.ID, &t.Name)
	if err == nil {
		return t, nil
	}
	if err != sql.ErrNoRows {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertTag"), err)
		return inventory.Tag{}, repo.ErrFailedToGet
	}

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, `INSERT INTO tags (id, name) VALUES (?, ?)`, id, name); err != nil {
		if isDuplicateKey(err) {
			// Lost a race with a concurrent insert; the row exists now.
			return r.UpsertTag(ctx, name)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertTag"), err)
		return inventory.Tag{}, repo.ErrFailedToInsert
	}
	return inventory.Tag{ID: id, Name: name}, nil
}

// LinkTag attaches a tag to an inventory. The (inventory_id, tag_id) unique
// key rejects duplicate links.
func (r *implRepository) LinkTag(ctx context.Context, inventoryID, tagID string) error {
	const query = `INSERT INTO inventory_tags (inventory_id, tag_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, inventoryID, tagID); err != nil {
		if isDuplicateKey(err) {
			return repo.ErrDuplicateLink
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("LinkTag"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// UnlinkTag detaches a tag from an inventory. Returns ErrRowNotFound when no
// link existed.
func (r *implRepository) UnlinkTag(ctx context.Context, inventoryID, tagID string) error {
	const query = `DELETE FROM inventory_tags WHERE inventory_id = ? AND tag_id = ?`
	result, err := r.db.ExecContext(ctx, query, inventoryID, tagID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UnlinkTag"), err)
		return repo.ErrFailedToDelete
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return repo.ErrRowNotFound
	}
	return nil
}

// ListTags returns the tags attached to an inventory.
func (r *implRepository) ListTags(ctx context.Context, inventoryID string) ([]inventory.Tag, error) {
	const query = `
		SELECT t.id, t.name
		FROM tags t
		JOIN inventory_tags it ON it.tag_id = t.id
		WHERE it.inventory_id = ?
		ORDER BY t.name ASC`

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tags []inventory.Tag
	for rows.Next() {
		var t inventory.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, repo.ErrFailedToList
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// SearchTags returns tags whose name starts with prefix, most used first.
func (r *implRepository) SearchTags(ctx context.Context, prefix string, limit int) ([]inventory.TagWithCount, error) {
	const query = `
		SELECT t.id, t.name, COUNT(it.inventory_id) AS usage_count
		FROM tags t
		LEFT JOIN inventory_tags it ON it.tag_id = t.id
		WHERE t.name LIKE ?
		GROUP BY t.id, t.name
		ORDER BY usage_count DESC, t.name ASC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, prefix+"%", limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchTags"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tags []inventory.TagWithCount
	for rows.Next() {
		var t inventory.TagWithCount
		if err := rows.Scan(&t.Tag.ID, &t.Tag.Name, &t.Count); err != nil {
			return nil, repo.ErrFailedToList
		}
		tags = append(tags, t)
	}
	return tags, nil
}
