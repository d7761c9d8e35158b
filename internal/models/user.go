package models

import (
	"strings"

	"payledger/internal/common"
)

// Role is the authorization level of a user account.
type Role string

const (
	// RoleAdmin can enter pay records and create accounts.
	RoleAdmin Role = "Admin"
	// RoleUser has view-only access to reports.
	RoleUser Role = "User"
)

// ParseRole normalizes a free-form role string ("admin", "USER", ...) to one
// of the canonical Role values. Anything else yields common.ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "user":
		return RoleUser, nil
	default:
		return "", common.ErrInvalidRole
	}
}

// UserAccount is a single login credential record. Accounts are immutable
// once appended; uniqueness of ID is the creating caller's responsibility.
type UserAccount struct {
	ID       string
	Password string
	Role     Role
}
