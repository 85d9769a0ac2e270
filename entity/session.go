package entity

import "strings"

type Role string

const (
	RoleCreator   Role = "CREATOR"
	RoleOrganizer Role = "ORGANIZER"
	RoleAdmin     Role = "ADMIN"
)

func ParseRole(raw string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleOrganizer:
		return RoleOrganizer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleCreator
	}
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the signed-in state held in local storage. The token is an
// opaque bearer string, trusted until the server rejects it; there is no
// refresh or expiry tracking.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
