package user

import (
	"slices"

	"github.com/jrammler/storefront/internal/entity"
)

// RoleForm is the state of the role edit form for one target user.
type RoleForm struct {
	UserID int
	Name   string
	Email  string
	Image  string
	Role   entity.Role

	// Editable is true only when the acting account is a super admin.
	Editable bool
	Options  []entity.Role

	Error string
	Saved bool
}

// RoleUpdate is the payload sent to the backend on submit.
type RoleUpdate struct {
	Role entity.Role
}

// NewRoleForm resets the form to target. A nil target leaves every field at
// its zero value.
func NewRoleForm(target *entity.User, current entity.Account) RoleForm {
	form := RoleForm{
		Editable: current.IsSuperAdmin(),
		Options:  AssignableRoles(current),
	}
	if target == nil {
		return form
	}
	form.UserID = target.ID
	form.Name = target.Name
	form.Email = target.Email
	form.Image = target.Image
	form.Role = target.Role
	return form
}

// AssignableRoles omits super admin unless the acting account already holds it.
// This mirrors the backend rule for display only.
func AssignableRoles(current entity.Account) []entity.Role {
	roles := entity.Roles()
	if current.IsSuperAdmin() {
		return roles
	}
	return slices.DeleteFunc(roles, func(r entity.Role) bool {
		return r == entity.RoleSuperAdmin
	})
}

func (f RoleForm) HasOption(role entity.Role) bool {
	return slices.Contains(f.Options, role)
}

func (f RoleForm) Payload() RoleUpdate {
	return RoleUpdate{Role: f.Role}
}
