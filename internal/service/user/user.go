package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jrammler/storefront/internal/entity"
)

var RoleRequiredError = errors.New("Role is required")
var PermissionDeniedError = errors.New("Only a super admin can change roles")
var UserNotFoundError = errors.New("User not found")

type Backend interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id int) (entity.User, error)
	UpdateUserRole(ctx context.Context, id int, role entity.Role, actor entity.Account) error
}

type UserService struct {
	backend  Backend
	notFound func(error) bool
}

// NewUserService wraps backend. notFound reports whether a backend error means
// the user does not exist.
func NewUserService(backend Backend, notFound func(error) bool) *UserService {
	if notFound == nil {
		notFound = func(error) bool { return false }
	}
	return &UserService{
		backend:  backend,
		notFound: notFound,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.backend.ListUsers(ctx)
}

func (s *UserService) EditForm(ctx context.Context, id int, current entity.Account) (RoleForm, error) {
	target, err := s.backend.GetUser(ctx, id)
	if err != nil {
		if s.notFound(err) {
			return RoleForm{}, UserNotFoundError
		}
		return RoleForm{}, err
	}
	return NewRoleForm(&target, current), nil
}

// Submit validates role and sends the update. The returned form reflects the
// submitted value so it can be rendered back with an error.
func (s *UserService) Submit(ctx context.Context, id int, current entity.Account, role string) (RoleForm, error) {
	form, err := s.EditForm(ctx, id, current)
	if err != nil {
		return form, err
	}
	if !form.Editable {
		slog.WarnContext(ctx, "Role change refused", "username", current.Username, "user_id", id)
		return form, PermissionDeniedError
	}
	if strings.TrimSpace(role) == "" {
		return form, RoleRequiredError
	}
	parsed, err := entity.ParseRole(role)
	if err != nil {
		return form, err
	}
	if !form.HasOption(parsed) {
		return form, PermissionDeniedError
	}
	form.Role = parsed

	payload := form.Payload()
	err = s.backend.UpdateUserRole(ctx, id, payload.Role, current)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to update role", "user_id", id, "role", payload.Role, "error", err)
		return form, err
	}
	slog.InfoContext(ctx, "Role updated", "username", current.Username, "user_id", id, "role", payload.Role)
	form.Saved = true
	return form, nil
}
