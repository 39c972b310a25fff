// Package i18n provides locale resolution and message printing for storefront pages.
package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English}

var matcher = language.NewMatcher(supported)

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the best supported language for the request's Accept-Language header.
func ResolveTag(r *http.Request) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

type printerContextKey struct{}

func WithPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, printerContextKey{}, p)
}

// FromContext returns the request printer, falling back to the default language.
func FromContext(ctx context.Context) *message.Printer {
	if p, ok := ctx.Value(printerContextKey{}).(*message.Printer); ok && p != nil {
		return p
	}
	return Printer(Default())
}

// T prints the message registered for key with the context's printer.
func T(ctx context.Context, key string, args ...any) string {
	return FromContext(ctx).Sprintf(key, args...)
}
