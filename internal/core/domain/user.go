package domain

import "time"

// Role values a user can hold. RoleUser is the default at registration.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// ValidRole reports whether role is one of the enumerated values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleModerator
}

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
	Locked       bool      `json:"locked"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the identity resolved from a validated bearer token.
// The HTTP layer builds it once per request and passes it explicitly into
// every service call requiring authorization.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the principal bypasses ownership checks.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Owns reports whether the principal may act on a resource belonging to
// userID: admins always, everyone else only on their own resources.
func (p Principal) Owns(userID string) bool {
	return p.IsAdmin() || p.UserID == userID
}
