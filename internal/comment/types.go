package comment

import "time"

// Author is the embedded commenter summary.
type Author struct {
	ID    string
	Name  string
	Email string
	Image string
}

// Comment is one post on an inventory's discussion thread.
type Comment struct {
	ID          string
	InventoryID string
	Author      Author
	Body        string
	CreatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	InventoryID string
	Body        string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Comments []Comment
	Total    int
}
