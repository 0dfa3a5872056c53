package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFormatReq binds and validates the format-replace request body.
func (h *handler) processFormatReq(c *gin.Context) (formatReq, error) {
	var req formatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFieldsReq binds and validates the fields-replace request body.
func (h *handler) processFieldsReq(c *gin.Context) (fieldsReq, error) {
	var req fieldsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
