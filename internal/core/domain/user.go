package domain

import (
	"strings"
	"time"
)

// Role is the authorization role attached to a user and carried in access tokens.
type Role string

const (
	RoleEmployee  Role = "EMPLOYEE"
	RoleManager   Role = "MANAGER"
	RoleFinancial Role = "FINANCIAL"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleEmployee, RoleManager, RoleFinancial, RoleAdmin:
		return r, true
	}
	return "", false
}

// User represents a user of the application in the domain.
type User struct {
	UserID       int64  `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasAnyRole reports whether the user holds one of the given roles.
func (u User) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
