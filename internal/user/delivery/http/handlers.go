package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-hub/internal/middleware"
	"inventory-hub/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates an account with email and password and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(output))
}

// GoogleRedirect sends the browser to the Google consent page.
func (h *handler) GoogleRedirect(c *gin.Context) {
	url := h.uc.GoogleAuthURL(c.Query("state"))
	if url == "" {
		response.Error(c, h.mapError(errOAuthDisabled), nil)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback godoc
// @Summary     Google sign-in callback
// @Description Exchanges the OAuth code and returns a session token.
// @Tags        Auth
// @Produce     json
// @Param       code query string true "OAuth authorization code"
// @Success     200 {object} authResp
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	if code == "" {
		response.Error(c, errMissingCode, nil)
		return
	}

	output, err := h.uc.LoginWithGoogle(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginWithGoogle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the current session token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user profile
// @Tags        Users
// @Produce     json
// @Success     200 {object} profileResp
// @Router      /api/v1/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.Profile(ctx, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(output))
}

// Profile godoc
// @Summary     Public user profile
// @Tags        Users
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Profile(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(output))
}

// AdminList godoc
// @Summary     List all users
// @Description Returns every account with owned-inventory counts. Admin only.
// @Tags        Admin
// @Produce     json
// @Success     200 {object} adminListResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/admin/users [GET]
func (h *handler) AdminList(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.AdminListUsers(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.AdminListUsers: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAdminListResp(output))
}

// AdminSetRole godoc
// @Summary     Change a user's role
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       id   path string     true "User ID"
// @Param       body body setRoleReq true "New role"
// @Success     200 {object} profileResp
// @Router      /api/v1/admin/users/{id}/role [PATCH]
func (h *handler) AdminSetRole(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req setRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AdminSetRole(ctx, sc, c.Param("id"), parseRole(req.Role))
	if err != nil {
		h.l.Errorf(ctx, "uc.AdminSetRole: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(output))
}

// AdminSetBlocked godoc
// @Summary     Block or unblock a user
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       id   path string        true "User ID"
// @Param       body body setBlockedReq true "Blocked flag"
// @Success     200 {object} profileResp
// @Router      /api/v1/admin/users/{id}/block [PATCH]
func (h *handler) AdminSetBlocked(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req setBlockedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AdminSetBlocked(ctx, sc, c.Param("id"), *req.Blocked)
	if err != nil {
		h.l.Errorf(ctx, "uc.AdminSetBlocked: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(output))
}

// AdminDelete godoc
// @Summary     Delete a user
// @Tags        Admin
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/admin/users/{id} [DELETE]
func (h *handler) AdminDelete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.AdminDeleteUser(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.AdminDeleteUser: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
