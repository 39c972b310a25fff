package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jrammler/storefront/internal/controller/web/templates"
	"github.com/jrammler/storefront/internal/entity"
	"github.com/jrammler/storefront/internal/service/user"
)

// maxFormMemory bounds the multipart form kept in memory.
const maxFormMemory = 1 << 20

func (s *Server) AddAdminHandlers() {
	s.mux.HandleFunc("GET /admin", requireAccount(s.handleDashboardGet))
	s.mux.HandleFunc("GET /admin/users/{id}/edit", requireAccount(s.handleUserEditGet))
	s.mux.HandleFunc("POST /admin/users/{id}/edit", requireAccount(s.handleUserEditPost))
}

func (s *Server) handleDashboardGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var form *user.RoleForm
	if editID := r.FormValue("edit"); editID != "" {
		id, err := strconv.Atoi(editID)
		if err != nil {
			s.renderError(w, r, http.StatusNotFound)
			return
		}
		f, err := s.service.UserService.EditForm(ctx, id, *accountFromContext(ctx))
		if err != nil {
			s.handleUserError(w, r, err)
			return
		}
		form = &f
	}

	d, err := s.service.DashboardService.Dashboard(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load dashboard", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	s.render(w, r, "dashboard.heading", nil, templates.Dashboard(d, form))
}

func (s *Server) handleUserEditGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.renderError(w, r, http.StatusNotFound)
		return
	}
	form, err := s.service.UserService.EditForm(r.Context(), id, *accountFromContext(r.Context()))
	if err != nil {
		s.handleUserError(w, r, err)
		return
	}
	component := templates.EditUserForm(form)
	s.render(w, r, "user_form.heading", component, component)
}

func (s *Server) handleUserEditPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.renderError(w, r, http.StatusNotFound)
		return
	}
	err = r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	form, err := s.service.UserService.Submit(ctx, id, *accountFromContext(ctx), r.FormValue("role"))
	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, user.UserNotFoundError):
		s.renderError(w, r, http.StatusNotFound)
		return
	case errors.Is(err, user.PermissionDeniedError):
		status = http.StatusForbidden
		form.Error = "user_form.forbidden"
	case errors.Is(err, user.RoleRequiredError):
		status = http.StatusUnprocessableEntity
		form.Error = "user_form.role_required"
	case errors.Is(err, entity.InvalidRoleError):
		status = http.StatusUnprocessableEntity
		form.Error = "user_form.invalid_role"
	case form.UserID == 0:
		// the target could not be loaded at all
		slog.ErrorContext(ctx, "Failed to load user for role edit", "user_id", id, "error", err)
		s.renderError(w, r, http.StatusBadGateway)
		return
	default:
		status = http.StatusBadGateway
		form.Error = "user_form.failed"
	}
	component := templates.EditUserForm(form)
	s.renderStatus(w, r, status, "user_form.heading", component, component)
}

func (s *Server) handleUserError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, user.UserNotFoundError) {
		s.renderError(w, r, http.StatusNotFound)
		return
	}
	slog.ErrorContext(r.Context(), "Failed to load user", "error", err)
	s.renderError(w, r, http.StatusBadGateway)
}
