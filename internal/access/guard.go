// Package access holds the role check run by the boundary before it
// changes the course catalog.
package access

import (
	"strings"

	"github.com/handiism/edupro/internal/model"
)

// Role is the role of the person using the platform.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ParseRole normalizes a configured role name. An empty name means student.
func ParseRole(s string) Role {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleStudent
	}
	return Role(s)
}

// Require returns a *model.PermissionDeniedError unless actual equals required.
func Require(actual, required Role) error {
	if actual != required {
		return &model.PermissionDeniedError{Required: string(required), Actual: string(actual)}
	}
	return nil
}
