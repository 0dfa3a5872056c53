package repository

import (
	"context"

	"inventory-hub/internal/comment"
)

// Repository is the composed interface for the comment domain data store.
type Repository interface {
	CommentRepository
}

// CommentRepository defines data access for the Comment entity.
type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (comment.Comment, error)
	GetOneComment(ctx context.Context, id string) (comment.Comment, error)
	ListComments(ctx context.Context, inventoryID string) ([]comment.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}
