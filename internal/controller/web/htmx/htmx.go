// Package htmx renders templ components for full page loads and htmx swaps.
package htmx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the header htmx sets on requests it initiates.
const RequestHeaderKey = "HX-Request"

// StatusHeaderKey carries the real status of a fragment sent with 200.
const StatusHeaderKey = "X-Fragment-Status"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// RenderPage renders fragment for htmx requests and full for everything else.
// If either is nil the other is used for both paths.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component) {
	target := pick(r, fragment, full)
	if target == nil {
		return
	}
	w.Header().Add("Vary", RequestHeaderKey)
	templ.Handler(target).ServeHTTP(w, r)
}

// RenderStatus is RenderPage with a non-200 status code. htmx only swaps 2xx
// responses, so htmx requests still get 200 and the original status in
// StatusHeaderKey.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component, full templ.Component) {
	if IsHTMXRequest(r) {
		w.Header().Set(StatusHeaderKey, strconv.Itoa(status))
		status = http.StatusOK
	}
	target := pick(r, fragment, full)
	if target == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Add("Vary", RequestHeaderKey)
	templ.Handler(target, templ.WithStatus(status)).ServeHTTP(w, r)
}

func pick(r *http.Request, fragment templ.Component, full templ.Component) templ.Component {
	if full == nil || (IsHTMXRequest(r) && fragment != nil) {
		return fragment
	}
	return full
}
