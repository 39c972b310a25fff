package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "english", header: "en-GB,en;q=0.9"},
		{name: "unsupported falls back", header: "pt-BR"},
		{name: "garbage", header: ";;;"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Language", tc.header)
			tag := ResolveTag(req)
			base, _ := tag.Base()
			if base.String() != "en" {
				t.Errorf("Expected english, got %s", tag)
			}
		})
	}
}

func TestT(t *testing.T) {
	ctx := WithPrinter(context.Background(), Printer(language.English))
	if got := T(ctx, "testimonials.empty"); got != "No testimonials available" {
		t.Errorf("Unexpected message %q", got)
	}
	if got := T(context.Background(), "categories.products", 4); got != "4 products" {
		t.Errorf("Unexpected message %q", got)
	}
}
