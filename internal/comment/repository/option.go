package repository

// CreateCommentOptions holds parameters for inserting a new Comment.
type CreateCommentOptions struct {
	InventoryID string
	AuthorID    string
	Body        string
}
