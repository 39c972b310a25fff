package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRenderPage(t *testing.T) {
	testCases := []struct {
		name     string
		htmx     bool
		fragment templ.Component
		full     templ.Component
		expected string
	}{
		{name: "full page", fragment: text("fragment"), full: text("full"), expected: "full"},
		{name: "htmx swap", htmx: true, fragment: text("fragment"), full: text("full"), expected: "fragment"},
		{name: "htmx without fragment", htmx: true, full: text("full"), expected: "full"},
		{name: "full without full", fragment: text("fragment"), expected: "fragment"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.htmx {
				req.Header.Set(RequestHeaderKey, "true")
			}
			rec := httptest.NewRecorder()

			RenderPage(rec, req, tc.fragment, tc.full)

			if rec.Body.String() != tc.expected {
				t.Errorf("Expected body %q, got %q", tc.expected, rec.Body.String())
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RenderStatus(rec, req, http.StatusNotFound, nil, text("missing"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if rec.Body.String() != "missing" {
		t.Errorf("Expected body %q, got %q", "missing", rec.Body.String())
	}
}

func TestRenderStatusHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderStatus(rec, req, http.StatusForbidden, text("fragment"), text("full"))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for htmx, got %d", rec.Code)
	}
	if rec.Header().Get(StatusHeaderKey) != "403" {
		t.Errorf("Expected fragment status 403, got %q", rec.Header().Get(StatusHeaderKey))
	}
	if rec.Body.String() != "fragment" {
		t.Errorf("Expected fragment body, got %q", rec.Body.String())
	}
}
