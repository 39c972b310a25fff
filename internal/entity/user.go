package entity

import (
	"errors"
	"strings"
)

var InvalidRoleError = errors.New("Role is not one of super admin, admin or customer")

type Role string

const (
	RoleSuperAdmin Role = "super admin"
	RoleAdmin      Role = "admin"
	RoleCustomer   Role = "customer"
)

// Roles lists every assignable role in display order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleCustomer}
}

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range Roles() {
		if role == r {
			return r, nil
		}
	}
	return "", InvalidRoleError
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Image string `json:"image"`
}
