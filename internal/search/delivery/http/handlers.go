package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "inventory-hub/pkg/errors"
	"inventory-hub/pkg/response"
)

// Search godoc
// @Summary     Global search
// @Description Matches inventories and items. Queries shorter than 2 characters return an empty result.
// @Tags        Search
// @Produce     json
// @Param       q query string true "Search query"
// @Success     200 {object} searchResp
// @Router      /api/v1/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Search(ctx, c.Query("q"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "something went wrong"), nil)
		return
	}

	response.OK(c, newSearchResp(output))
}
