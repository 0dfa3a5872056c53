package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/comment"
	"inventory-hub/internal/middleware"
	"inventory-hub/pkg/response"
)

// Create godoc
// @Summary     Post a comment
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body createReq true "Comment body"
// @Success     200 {object} commentResp
// @Router      /api/v1/inventories/{id}/comments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	cm, err := h.uc.Create(ctx, middleware.GetScope(c), comment.CreateInput{
		InventoryID: c.Param("id"),
		Body:        req.Body,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCommentResp(cm))
}

// List godoc
// @Summary     List comments
// @Tags        Comments
// @Produce     json
// @Param       id path string true "Inventory ID"
// @Success     200 {object} listResp
// @Router      /api/v1/inventories/{id}/comments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Delete godoc
// @Summary     Delete a comment
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
// @Param       commentId path string true "Comment ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/comments/{commentId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("commentId")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
