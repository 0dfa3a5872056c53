package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
	"inventory-hub/pkg/response"
)

// Create godoc
// @Summary     Add an item
// @Description Adds an item to the inventory. An empty custom_id asks for generation from the inventory's format.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     409 {object} response.Resp "Duplicate custom ID"
// @Router      /api/v1/inventories/{id}/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	detail, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(detail))
}

// List godoc
// @Summary     List items of an inventory
// @Tags        Items
// @Produce     json
// @Param       id path string true "Inventory ID"
// @Success     200 {object} listResp
// @Router      /api/v1/inventories/{id}/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get one item
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	detail, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(detail))
}

// Update godoc
// @Summary     Update an item
// @Description Guarded update. When the body carries a version it must match the stored one; a mismatch returns 409 and writes nothing. A duplicate custom ID is a distinct 409.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Param       body body updateReq true "Values and caller-observed version"
// @Success     200 {object} itemResp
// @Failure     409 {object} response.Resp "Version conflict or duplicate custom ID"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	detail, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(detail))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// DeleteBulk godoc
// @Summary     Delete items
// @Description Removes the listed items of one inventory in a single call.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body deleteBulkReq true "Item IDs"
// @Success     200 {object} response.Resp
// @Router      /api/v1/inventories/{id}/items [DELETE]
func (h *handler) DeleteBulk(c *gin.Context) {
	ctx := c.Request.Context()

	var req deleteBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteBulk(ctx, middleware.GetScope(c), c.Param("id"), req.IDs); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Like godoc
// @Summary     Like an item
// @Description Records a like; liking twice is a no-op.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Router      /api/v1/items/{id}/like [POST]
func (h *handler) Like(c *gin.Context) {
	ctx := c.Request.Context()

	detail, err := h.uc.Like(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(detail))
}

// Unlike godoc
// @Summary     Remove a like
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Router      /api/v1/items/{id}/like [DELETE]
func (h *handler) Unlike(c *gin.Context) {
	ctx := c.Request.Context()

	detail, err := h.uc.Unlike(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(detail))
}
