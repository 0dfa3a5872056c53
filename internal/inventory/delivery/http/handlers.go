package http

import (
	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
	"inventory-hub/pkg/response"
)

// Create godoc
// @Summary     Create an inventory
// @Description Creates an inventory owned by the caller with the default custom ID format.
// @Tags        Inventories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Inventory data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDetailResp(output))
}

// List godoc
// @Summary     List inventories
// @Tags        Inventories
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/inventories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get one inventory
// @Description Returns the inventory with its fields, tags, and access grants.
// @Tags        Inventories
// @Produce     json
// @Param       id path string true "Inventory ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventories/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDetailResp(output))
}

// Update godoc
// @Summary     Update inventory settings
// @Description Guarded update. When the body carries a version it must match the stored one; a mismatch returns 409 and writes nothing.
// @Tags        Inventories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body updateReq true "Settings and caller-observed version"
// @Success     200 {object} detailResp
// @Failure     409 {object} response.Resp "Version conflict"
// @Router      /api/v1/inventories/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDetailResp(output))
}

// Delete godoc
// @Summary     Delete an inventory
// @Tags        Inventories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/inventories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ReplaceFormat godoc
// @Summary     Replace the custom ID format
// @Description Validates and swaps the full ordered element list. An accepted replace bumps the inventory version.
// @Tags        Inventories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body formatReq true "Ordered format elements"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid format"
// @Router      /api/v1/inventories/{id}/custom-id-format [PUT]
func (h *handler) ReplaceFormat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFormatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ReplaceFormat(ctx, middleware.GetScope(c), c.Param("id"), req.toElements())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDetailResp(output))
}

// ReplaceFields godoc
// @Summary     Replace the custom field definitions
// @Tags        Inventories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body fieldsReq true "Field definitions, at most 3 per kind"
// @Success     200 {object} detailResp
// @Router      /api/v1/inventories/{id}/fields [PUT]
func (h *handler) ReplaceFields(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFieldsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ReplaceFields(ctx, middleware.GetScope(c), c.Param("id"), req.toInputs())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDetailResp(output))
}

// GrantAccess godoc
// @Summary     Grant write access
// @Tags        Inventories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body grantReq true "Grantee"
// @Success     200 {object} grantResp
// @Failure     409 {object} response.Resp "Already granted"
// @Router      /api/v1/inventories/{id}/access [POST]
func (h *handler) GrantAccess(c *gin.Context) {
	ctx := c.Request.Context()

	var req grantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	grant, err := h.uc.GrantAccess(ctx, middleware.GetScope(c), c.Param("id"), req.UserID)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newGrantResp(grant))
}

// RevokeAccess godoc
// @Summary     Revoke write access
// @Tags        Inventories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       grantId path string true "Grant ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/inventories/{id}/access/{grantId} [DELETE]
func (h *handler) RevokeAccess(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RevokeAccess(ctx, middleware.GetScope(c), c.Param("id"), c.Param("grantId")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// AddTag godoc
// @Summary     Add a tag
// @Tags        Inventories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       body body tagReq true "Tag name"
// @Success     200 {object} tagResp
// @Router      /api/v1/inventories/{id}/tags [POST]
func (h *handler) AddTag(c *gin.Context) {
	ctx := c.Request.Context()

	var req tagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	tag, err := h.uc.AddTag(ctx, middleware.GetScope(c), c.Param("id"), req.Name)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, tagResp(tag))
}

// RemoveTag godoc
// @Summary     Remove a tag
// @Tags        Inventories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Inventory ID"
// @Param       tagId path string true "Tag ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/inventories/{id}/tags/{tagId} [DELETE]
func (h *handler) RemoveTag(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveTag(ctx, middleware.GetScope(c), c.Param("id"), c.Param("tagId")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SearchTags godoc
// @Summary     Tag autocomplete
// @Tags        Tags
// @Produce     json
// @Param       q query string true "Name prefix"
// @Success     200 {array} tagWithCountResp
// @Router      /api/v1/tags [GET]
func (h *handler) SearchTags(c *gin.Context) {
	ctx := c.Request.Context()

	tags, err := h.uc.SearchTags(ctx, c.Query("q"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	resp := make([]tagWithCountResp, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, tagWithCountResp{ID: t.Tag.ID, Name: t.Tag.Name, Count: t.Count})
	}
	response.OK(c, resp)
}

// ListByTag godoc
// @Summary     Inventories carrying a tag
// @Tags        Tags
// @Produce     json
// @Param       name path string true "Tag name"
// @Success     200 {object} listResp
// @Router      /api/v1/tags/{name}/inventories [GET]
func (h *handler) ListByTag(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListByTag(ctx, c.Param("name"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Stats godoc
// @Summary     Inventory statistics
// @Description Aggregates custom field values across all items. Cached per inventory version.
// @Tags        Inventories
// @Produce     json
// @Param       id path string true "Inventory ID"
// @Success     200 {object} statsResp
// @Router      /api/v1/inventories/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatsResp(output))
}

// Home godoc
// @Summary     Landing sections
// @Description Returns the newest inventories and the ones with the most items.
// @Tags        Home
// @Produce     json
// @Success     200 {object} homeResp
// @Router      /api/v1/home [GET]
func (h *handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Home(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, homeResp{
		Latest:  newSummariesResp(output.Latest),
		Popular: newSummariesResp(output.Popular),
	})
}

// Dashboard godoc
// @Summary     Caller dashboard
// @Description Returns the caller's owned and shared inventories.
// @Tags        Home
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboardResp
// @Router      /api/v1/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Dashboard(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, dashboardResp{
		Owned:      newSummariesResp(output.Owned),
		Accessible: newSummariesResp(output.Accessible),
		TotalItems: output.TotalItems,
	})
}
