package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jrammler/storefront/internal/controller/web/htmx"
	"github.com/jrammler/storefront/internal/controller/web/templates"
	"github.com/jrammler/storefront/internal/service/catalog"
)

func (s *Server) AddGalleryHandlers() {
	s.mux.HandleFunc("GET /gallery", s.handleGalleryGet)
	s.mux.HandleFunc("GET /gallery/close", s.handleLightboxCloseGet)
	s.mux.HandleFunc("GET /gallery/{index}", s.handleLightboxGet)
}

func (s *Server) handleGalleryGet(w http.ResponseWriter, r *http.Request) {
	images, err := s.service.CatalogService.Gallery(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load gallery", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	s.render(w, r, "gallery.heading", nil, templates.Gallery(images, nil))
}

func (s *Server) handleLightboxCloseGet(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, "/gallery", http.StatusSeeOther)
		return
	}
	s.render(w, r, "gallery.heading", templates.LightboxClosed(), nil)
}

func (s *Server) handleLightboxGet(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.renderError(w, r, http.StatusNotFound)
		return
	}
	ctx := r.Context()
	page, err := s.service.CatalogService.Lightbox(ctx, index)
	if errors.Is(err, catalog.ImageNotFoundError) {
		s.renderError(w, r, http.StatusNotFound)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load gallery", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	lightbox := templates.Lightbox(page)
	if htmx.IsHTMXRequest(r) {
		s.render(w, r, "gallery.heading", lightbox, nil)
		return
	}
	images, err := s.service.CatalogService.Gallery(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load gallery", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	s.render(w, r, "gallery.heading", nil, templates.Gallery(images, lightbox))
}
