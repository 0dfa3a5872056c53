package http

import (
	"inventory-hub/internal/comment"
	"inventory-hub/pkg/response"
)

type createReq struct {
	Body string `json:"body" binding:"required"`
}

type authorResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type commentResp struct {
	ID          string     `json:"id"`
	InventoryID string     `json:"inventory_id"`
	Author      authorResp `json:"author"`
	Body        string     `json:"body"`
	CreatedAt   string     `json:"created_at"`
}

func newCommentResp(cm comment.Comment) commentResp {
	return commentResp{
		ID:          cm.ID,
		InventoryID: cm.InventoryID,
		Author:      authorResp(cm.Author),
		Body:        cm.Body,
		CreatedAt:   cm.CreatedAt.Format(response.DateTimeFormat),
	}
}

type listResp struct {
	Comments []commentResp `json:"comments"`
	Total    int           `json:"total"`
}

func newListResp(out comment.ListOutput) listResp {
	resp := listResp{Comments: make([]commentResp, 0, len(out.Comments)), Total: out.Total}
	for _, cm := range out.Comments {
		resp.Comments = append(resp.Comments, newCommentResp(cm))
	}
	return resp
}
