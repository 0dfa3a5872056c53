package mysql

import (
	"context"
	"fmt"
	"strings"

	repo "inventory-hub/internal/item/repository"
)

// CreateLike records a like. The (item_id, user_id) unique key rejects
// double likes.
func (r *implRepository) CreateLike(ctx context.Context, itemID, userID string) error {
	const query = `INSERT INTO item_likes (item_id, user_id, created_at) VALUES (?, ?, NOW())`
	if _, err := r.db.ExecContext(ctx, query, itemID, userID); err != nil {
		if isDuplicateKey(err) {
			return repo.ErrDuplicateLike
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLike"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// DeleteLike removes a like; removing a like that never existed is a no-op.
func (r *implRepository) DeleteLike(ctx context.Context, itemID, userID string) error {
	const query = `DELETE FROM item_likes WHERE item_id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, itemID, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteLike"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountLikes returns the like count of one item.
func (r *implRepository) CountLikes(ctx context.Context, itemID string) (int, error) {
	const query = `SELECT COUNT(*) FROM item_likes WHERE item_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, itemID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountLikes"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}

// HasLiked reports whether userID has liked itemID.
func (r *implRepository) HasLiked(ctx context.Context, itemID, userID string) (bool, error) {
	const query = `SELECT COUNT(*) FROM item_likes WHERE item_id = ? AND user_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, itemID, userID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasLiked"), err)
		return false, repo.ErrFailedToGet
	}
	return count > 0, nil
}

// CountLikesBulk returns like counts for many items in one round trip.
func (r *implRepository) CountLikesBulk(ctx context.Context, itemIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(itemIDs))
	if len(itemIDs) == 0 {
		return counts, nil
	}

	placeholders := strings.Repeat("?, ", len(itemIDs)-1) + "?"
	query := fmt.Sprintf(
		"SELECT item_id, COUNT(*) FROM item_likes WHERE item_id IN (%s) GROUP BY item_id", placeholders)

	args := make([]any, 0, len(itemIDs))
	for _, id := range itemIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountLikesBulk"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, repo.ErrFailedToList
		}
		counts[id] = count
	}
	return counts, nil
}

// ListLikedItemIDs filters itemIDs down to the ones userID has liked.
func (r *implRepository) ListLikedItemIDs(ctx context.Context, userID string, itemIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(itemIDs))
	if userID == "" || len(itemIDs) == 0 {
		return liked, nil
	}

	placeholders := strings.Repeat("?, ", len(itemIDs)-1) + "?"
	query := fmt.Sprintf(
		"SELECT item_id FROM item_likes WHERE user_id = ? AND item_id IN (%s)", placeholders)

	args := make([]any, 0, len(itemIDs)+1)
	args = append(args, userID)
	for _, id := range itemIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLikedItemIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		liked[id] = true
	}
	return liked, nil
}
