package model

// Role is the global role of an authenticated user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Scope is the authenticated caller context resolved by the auth middleware
// and passed down to use cases.
type Scope struct {
	UserID  string
	Email   string
	Role    Role
	TokenID string
}

// IsAdmin reports whether the caller holds the global admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
