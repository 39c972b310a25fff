package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrammler/storefront/internal/entity"
)

var errMissing = errors.New("missing")

type mockBackend struct {
	users   map[int]entity.User
	updated map[int]entity.Role
	actor   entity.Account
	err     error
}

func (m *mockBackend) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockBackend) GetUser(ctx context.Context, id int) (entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return entity.User{}, errMissing
	}
	return u, nil
}

func (m *mockBackend) UpdateUserRole(ctx context.Context, id int, role entity.Role, actor entity.Account) error {
	m.actor = actor
	if m.err != nil {
		return m.err
	}
	if m.updated == nil {
		m.updated = make(map[int]entity.Role)
	}
	m.updated[id] = role
	return nil
}

var (
	superAdmin = entity.Account{Username: "root", Role: entity.RoleSuperAdmin}
	admin      = entity.Account{Username: "ops", Role: entity.RoleAdmin}
	customer   = entity.User{ID: 4, Name: "Ann", Email: "ann@example.com", Role: entity.RoleCustomer, Image: "ann.png"}
)

func newService() (*UserService, *mockBackend) {
	backend := &mockBackend{users: map[int]entity.User{4: customer}}
	return NewUserService(backend, func(err error) bool { return errors.Is(err, errMissing) }), backend
}

func TestNewRoleFormOptions(t *testing.T) {
	testCases := []struct {
		name     string
		current  entity.Account
		editable bool
		options  []entity.Role
	}{
		{
			name:     "super admin",
			current:  superAdmin,
			editable: true,
			options:  []entity.Role{entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleCustomer},
		},
		{
			name:     "admin",
			current:  admin,
			editable: false,
			options:  []entity.Role{entity.RoleAdmin, entity.RoleCustomer},
		},
		{
			name:     "no account",
			current:  entity.Account{},
			editable: false,
			options:  []entity.Role{entity.RoleAdmin, entity.RoleCustomer},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target := customer
			form := NewRoleForm(&target, tc.current)
			if form.Editable != tc.editable {
				t.Errorf("Expected editable %v, got %v", tc.editable, form.Editable)
			}
			if diff := cmp.Diff(tc.options, form.Options); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
			if !tc.current.IsSuperAdmin() && form.HasOption(entity.RoleSuperAdmin) {
				t.Errorf("Expected super admin to be hidden from %q", tc.current.Role)
			}
		})
	}
}

func TestNewRoleFormResetsToTarget(t *testing.T) {
	target := customer
	form := NewRoleForm(&target, superAdmin)

	expected := RoleForm{
		UserID:   4,
		Name:     "Ann",
		Email:    "ann@example.com",
		Image:    "ann.png",
		Role:     entity.RoleCustomer,
		Editable: true,
		Options:  entity.Roles(),
	}
	if diff := cmp.Diff(expected, form); diff != "" {
		t.Errorf("Form mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RoleUpdate{Role: entity.RoleCustomer}, form.Payload()); diff != "" {
		t.Errorf("Payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRoleFormWithoutTarget(t *testing.T) {
	form := NewRoleForm(nil, superAdmin)

	if form.UserID != 0 || form.Name != "" || form.Email != "" || form.Image != "" || form.Role != "" {
		t.Errorf("Expected empty defaults, got %+v", form)
	}
}

func TestSubmit(t *testing.T) {
	testCases := []struct {
		name          string
		id            int
		current       entity.Account
		role          string
		backendErr    error
		expectedError error
		expectedRole  entity.Role
	}{
		{name: "super admin promotes", id: 4, current: superAdmin, role: "admin", expectedRole: entity.RoleAdmin},
		{name: "super admin grants super admin", id: 4, current: superAdmin, role: "super admin", expectedRole: entity.RoleSuperAdmin},
		{name: "admin refused", id: 4, current: admin, role: "customer", expectedError: PermissionDeniedError},
		{name: "role required", id: 4, current: superAdmin, role: " ", expectedError: RoleRequiredError},
		{name: "invalid role", id: 4, current: superAdmin, role: "owner", expectedError: entity.InvalidRoleError},
		{name: "unknown user", id: 9, current: superAdmin, role: "admin", expectedError: UserNotFoundError},
		{name: "backend failure", id: 4, current: superAdmin, role: "admin", backendErr: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			us, backend := newService()
			backend.err = tc.backendErr

			form, err := us.Submit(context.Background(), tc.id, tc.current, tc.role)

			switch {
			case tc.backendErr != nil:
				if !errors.Is(err, tc.backendErr) {
					t.Fatalf("Expected backend error, got %v", err)
				}
				if form.Saved {
					t.Errorf("Expected form not to be saved")
				}
			case tc.expectedError != nil:
				if !errors.Is(err, tc.expectedError) {
					t.Fatalf("Expected %v, got %v", tc.expectedError, err)
				}
				if len(backend.updated) != 0 {
					t.Errorf("Expected no update, got %v", backend.updated)
				}
			default:
				if err != nil {
					t.Fatalf("Unexpected error %v", err)
				}
				if backend.updated[tc.id] != tc.expectedRole {
					t.Errorf("Expected role %q sent, got %q", tc.expectedRole, backend.updated[tc.id])
				}
				if backend.actor != tc.current {
					t.Errorf("Expected acting account %+v sent, got %+v", tc.current, backend.actor)
				}
				if !form.Saved || form.Role != tc.expectedRole {
					t.Errorf("Expected saved form with role %q, got %+v", tc.expectedRole, form)
				}
			}
		})
	}
}
