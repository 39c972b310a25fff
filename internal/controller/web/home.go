package web

import (
	"log/slog"
	"net/http"

	"github.com/jrammler/storefront/internal/controller/web/htmx"
	"github.com/jrammler/storefront/internal/controller/web/templates"
)

func (s *Server) AddHomeHandlers() {
	s.mux.HandleFunc("GET /{$}", s.handleHomeGet)
	s.mux.HandleFunc("GET /sections/categories", s.handleCategoriesGet)
	s.mux.HandleFunc("GET /sections/testimonials", s.handleTestimonialsGet)
	s.mux.HandleFunc("GET /privacy", s.handlePrivacyGet)
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, r, http.StatusNotFound)
	})
}

func (s *Server) handleHomeGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categories, err := s.service.CatalogService.Categories(ctx, intParam(r, "page"))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load categories", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	products, err := s.service.CatalogService.Products(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load products", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	gallery, err := s.service.CatalogService.Gallery(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load gallery", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	testimonials := s.service.TestimonialService.Window(ctx, intParam(r, "start"))
	state := homeState(r)
	state.Page = categories.Index
	state.Start = testimonials.Index
	view := templates.HomeView{
		Categories:   categories,
		Products:     products,
		Testimonials: testimonials,
		Gallery:      gallery,
		State:        state,
	}
	s.render(w, r, "nav.home", nil, templates.Home(view))
}

// homeState reads the carousel positions every home page link carries.
func homeState(r *http.Request) templates.HomeState {
	return templates.HomeState{
		Page:   intParam(r, "page"),
		Start:  intParam(r, "start"),
		Reload: intParam(r, "reload"),
	}
}

// Section endpoints answer htmx swaps. Plain requests are sent to the home
// page in the same state.
func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request, anchor string) {
	target := "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target+"#"+anchor, http.StatusSeeOther)
}

func (s *Server) handleCategoriesGet(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMXRequest(r) {
		s.redirectHome(w, r, "categories")
		return
	}
	page, err := s.service.CatalogService.Categories(r.Context(), intParam(r, "page"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load categories", "error", err)
		s.renderError(w, r, http.StatusInternalServerError)
		return
	}
	state := homeState(r)
	state.Page = page.Index
	s.render(w, r, "nav.home", templates.CategorySection(page, state), nil)
}

func (s *Server) handleTestimonialsGet(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMXRequest(r) {
		s.redirectHome(w, r, "testimonials")
		return
	}
	page := s.service.TestimonialService.Window(r.Context(), intParam(r, "start"))
	state := homeState(r)
	state.Start = page.Index
	s.render(w, r, "nav.home", templates.TestimonialSection(page, state), nil)
}

func (s *Server) handlePrivacyGet(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "privacy.heading", nil, templates.Privacy())
}
