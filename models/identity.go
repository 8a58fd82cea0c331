package models

// Roles carried in the verified identity token.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the verified caller as supplied by the external identity
// provider: an opaque user id plus the profile fields the booking flow
// snapshots onto reservations.
type Identity struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role claim.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
