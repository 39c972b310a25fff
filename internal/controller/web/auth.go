package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jrammler/storefront/internal/backend"
)

func (s *Server) AddAuthHandlers() {
	s.mux.HandleFunc("GET /login", s.handleLoginGet)
	s.mux.HandleFunc("POST /login", s.handleLoginPost)
	s.mux.HandleFunc("GET /logout", s.handleLogoutGet)
	s.mux.HandleFunc("POST /register", s.handleRegisterPost)
}

func (s *Server) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/?modal=login", http.StatusFound)
}

func (s *Server) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	username := r.Form.Get("username")
	password := r.Form.Get("password")

	sessionToken, expiration, err := s.service.AuthService.LoginUser(r.Context(), username, password)
	if err != nil {
		slog.InfoContext(r.Context(), "Login failed", "username", username, "error", err)
		http.Redirect(w, r, "/?modal=login&error=1", http.StatusSeeOther)
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionToken,
		HttpOnly: true,
		Path:     "/", // valid for all paths
		Expires:  *expiration,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) handleLogoutGet(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	s.service.AuthService.LogoutUser(r.Context(), sessionCookie.Value)

	// clear session cookie
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		MaxAge:   -1, // tells the browser to delete the cookie
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleRegisterPost forwards the register modal to the backend, which owns
// validation and account creation.
func (s *Server) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}
	req := backend.RegisterRequest{
		Name:                 r.Form.Get("name"),
		Email:                r.Form.Get("email"),
		Password:             r.Form.Get("password"),
		PasswordConfirmation: r.Form.Get("password_confirmation"),
	}
	err = s.service.RegisterService.Register(r.Context(), req)
	if err != nil {
		var statusErr *backend.StatusError
		if !errors.As(err, &statusErr) {
			slog.ErrorContext(r.Context(), "Register request failed", "error", err)
		}
		http.Redirect(w, r, "/?modal=register&error=1", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/?modal=register&done=1", http.StatusSeeOther)
}
