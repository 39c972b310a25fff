package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/jrammler/storefront/internal/config"
	"github.com/jrammler/storefront/internal/controller/web/htmx"
	"github.com/jrammler/storefront/internal/controller/web/static"
	"github.com/jrammler/storefront/internal/controller/web/templates"
	"github.com/jrammler/storefront/internal/service"
)

type Server struct {
	service *service.Service
	mux     *http.ServeMux
}

func NewServer(service *service.Service) *Server {
	s := &Server{
		service: service,
		mux:     http.NewServeMux(),
	}
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	s.AddHomeHandlers()
	s.AddGalleryHandlers()
	s.AddAuthHandlers()
	s.AddAdminHandlers()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.withRequestContext(s.mux)
}

// Serve listens on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: config.ReadHeader,
	}
	errChan := make(chan error, 1)
	go func() {
		slog.Info("Listening", "addr", addr)
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Shutdown)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) layout(r *http.Request, titleKey string) templates.LayoutData {
	query := r.URL.Query()
	return templates.LayoutData{
		TitleKey: titleKey,
		Path:     r.URL.Path,
		Account:  accountFromContext(r.Context()),
		Modal: templates.Modal{
			Kind:   query.Get("modal"),
			Failed: query.Has("error"),
			Done:   query.Has("done"),
		},
	}
}

// render writes fragment for htmx requests and body wrapped in the page layout otherwise.
func (s *Server) render(w http.ResponseWriter, r *http.Request, titleKey string, fragment, body templ.Component) {
	htmx.RenderPage(w, r, fragment, templates.Page(s.layout(r, titleKey), body))
}

func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, titleKey string, fragment, body templ.Component) {
	htmx.RenderStatus(w, r, status, fragment, templates.Page(s.layout(r, titleKey), body))
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int) {
	key := "error.internal"
	if status == http.StatusNotFound {
		key = "error.not_found"
	}
	page := templates.ErrorPage(key)
	s.renderStatus(w, r, status, key, page, page)
}

// intParam parses a query parameter, falling back to 0 when it is missing or malformed.
func intParam(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return 0
	}
	return value
}
