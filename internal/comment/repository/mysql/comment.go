package mysql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"inventory-hub/internal/comment"
	repo "inventory-hub/internal/comment/repository"
)

// CreateComment inserts a new comment and returns it with the author joined.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (comment.Comment, error) {
	const query = `
		INSERT INTO comments (id, inventory_id, author_id, body, created_at)
		VALUES (?, ?, ?, ?, NOW())`

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, opt.InventoryID, opt.AuthorID, opt.Body); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return comment.Comment{}, repo.ErrFailedToInsert
	}

	return r.GetOneComment(ctx, id)
}

// GetOneComment retrieves a single comment by ID. Returns zero-value Comment
// (ID == "") when not found.
func (r *implRepository) GetOneComment(ctx context.Context, id string) (comment.Comment, error) {
	const query = `
		SELECT c.id, c.inventory_id, c.body, c.created_at, u.id, u.name, u.email, u.image
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = ? LIMIT 1`

	var cm comment.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cm.ID, &cm.InventoryID, &cm.Body, &cm.CreatedAt,
		&cm.Author.ID, &cm.Author.Name, &cm.Author.Email, &cm.Author.Image,
	)
	if err == sql.ErrNoRows {
		return comment.Comment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneComment"), err)
		return comment.Comment{}, repo.ErrFailedToGet
	}
	return cm, nil
}

// ListComments returns the discussion thread of an inventory, oldest first.
func (r *implRepository) ListComments(ctx context.Context, inventoryID string) ([]comment.Comment, error) {
	const query = `
		SELECT c.id, c.inventory_id, c.body, c.created_at, u.id, u.name, u.email, u.image
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.inventory_id = ?
		ORDER BY c.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var cm comment.Comment
		if err := rows.Scan(
			&cm.ID, &cm.InventoryID, &cm.Body, &cm.CreatedAt,
			&cm.Author.ID, &cm.Author.Name, &cm.Author.Email, &cm.Author.Image,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, cm)
	}
	return comments, nil
}

// DeleteComment removes a comment by ID.
func (r *implRepository) DeleteComment(ctx context.Context, id string) error {
	const query = `DELETE FROM comments WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteComment"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
