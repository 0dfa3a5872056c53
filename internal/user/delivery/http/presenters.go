package http

import (
	"time"

	"inventory-hub/internal/model"
	"inventory-hub/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=255"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type setRoleReq struct {
	Role string `json:"role" binding:"required,oneof=USER ADMIN"`
}

type setBlockedReq struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      string(u.Role),
		Blocked:   u.Blocked,
		CreatedAt: u.CreatedAt,
	}
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{Token: out.Token, User: newUserResp(out.User)}
}

type profileResp struct {
	User           userResp `json:"user"`
	InventoryCount int      `json:"inventory_count"`
}

func newProfileResp(out user.DetailUserOutput) profileResp {
	return profileResp{User: newUserResp(out.User), InventoryCount: out.InventoryCount}
}

type adminUserResp struct {
	userResp
	InventoryCount int `json:"inventory_count"`
}

type adminListResp struct {
	Users  []adminUserResp `json:"users"`
	Total  int             `json:"total"`
	Admins int             `json:"admins"`
}

func newAdminListResp(out user.ListUsersOutput) adminListResp {
	users := make([]adminUserResp, len(out.Users))
	for i, au := range out.Users {
		users[i] = adminUserResp{userResp: newUserResp(au.User), InventoryCount: au.InventoryCount}
	}
	return adminListResp{Users: users, Total: out.Total, Admins: out.Admins}
}

func parseRole(s string) model.Role {
	if s == string(model.RoleAdmin) {
		return model.RoleAdmin
	}
	return model.RoleUser
}
