// Package templates holds the storefront's templ components.
package templates

import (
	"context"
	"slices"
	"strconv"

	"github.com/jrammler/storefront/internal/entity"
	"github.com/jrammler/storefront/internal/i18n"
)

//go:generate templ generate

func itoa(i int) string {
	return strconv.Itoa(i)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func modalLink(path, kind string) string {
	if path == "" {
		path = "/"
	}
	return path + "?modal=" + kind
}

func closeLink(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func lightboxURL(i int) string {
	return "/gallery/" + itoa(i)
}

// roleLabel translates the roles this frontend knows and shows anything else
// as sent by the backend.
func roleLabel(ctx context.Context, role entity.Role) string {
	if !slices.Contains(entity.Roles(), role) {
		return string(role)
	}
	return i18n.T(ctx, "role."+string(role))
}

func ratingLabel(ctx context.Context, t entity.Testimonial) string {
	return i18n.T(ctx, "testimonials.rating", t.Stars())
}

func stars(t entity.Testimonial) []bool {
	filled := make([]bool, 0, entity.MaxRating)
	for star := entity.MinRating; star <= entity.MaxRating; star++ {
		filled = append(filled, star <= t.Stars())
	}
	return filled
}

// HomeState is the position of every home page carousel. Links carry all of
// it so moving one section leaves the others where they are.
type HomeState struct {
	Page   int
	Start  int
	Reload int
}

func (s HomeState) query() string {
	return "page=" + itoa(s.Page) + "&start=" + itoa(s.Start) + "&reload=" + itoa(s.Reload)
}

// HomeURL links to the full home page scrolled to anchor.
func (s HomeState) HomeURL(anchor string) string {
	return "/?" + s.query() + "#" + anchor
}

// SectionURL links to the htmx fragment of section.
func (s HomeState) SectionURL(section string) string {
	return "/sections/" + section + "?" + s.query()
}

type navControl struct {
	Href  string
	HxGet string
	Key   string
}

func categoryControls(state HomeState, prev, next int) []navControl {
	var controls []navControl
	for _, c := range []struct {
		index int
		key   string
	}{{prev, "carousel.previous"}, {next, "carousel.next"}} {
		s := state
		s.Page = c.index
		controls = append(controls, navControl{Href: s.HomeURL("categories"), HxGet: s.SectionURL("categories"), Key: c.key})
	}
	return controls
}

func testimonialControls(state HomeState, prev, next int) []navControl {
	var controls []navControl
	for _, c := range []struct {
		index int
		key   string
	}{{prev, "carousel.previous"}, {next, "carousel.next"}} {
		s := state
		s.Start = c.index
		controls = append(controls, navControl{Href: s.HomeURL("testimonials"), HxGet: s.SectionURL("testimonials"), Key: c.key})
	}
	return controls
}

func lightboxControls(prev, next int) []navControl {
	return []navControl{
		{Href: lightboxURL(prev), HxGet: lightboxURL(prev), Key: "carousel.previous"},
		{Href: lightboxURL(next), HxGet: lightboxURL(next), Key: "carousel.next"},
	}
}

func reloaded(state HomeState) HomeState {
	state.Reload++
	return state
}

const (
	chartWidth  = 600
	chartHeight = 200
	chartGap    = 8
)

type chartBar struct {
	X, Y, Width, Height, LabelX string
	Title, Label              string
}

// chartBars lays points out across the chart width. The gap shrinks with the
// slot so bars keep a positive width however many points there are.
func chartBars(points []entity.ChartPoint, highest float64) []chartBar {
	if len(points) == 0 || highest <= 0 {
		return nil
	}
	slot := float64(chartWidth) / float64(len(points))
	gap := min(chartGap, slot/4)
	width := slot - gap
	bars := make([]chartBar, 0, len(points))
	for i, p := range points {
		height := 0.0
		if p.Value > 0 {
			height = p.Value / highest * chartHeight
		}
		x := float64(i) * slot
		bars = append(bars, chartBar{
			X:      formatFloat(x),
			Y:      formatFloat(chartHeight - height),
			Width:  formatFloat(width),
			Height: formatFloat(height),
			LabelX: formatFloat(x + width/2),
			Title:  p.Label + ": " + formatFloat(p.Value),
			Label:  p.Label,
		})
	}
	return bars
}

func chartViewBox() string {
	return "0 0 " + itoa(chartWidth) + " " + itoa(chartHeight+20)
}

type registerField struct {
	Name, Kind, Key string
}

var registerFields = []registerField{
	{"name", "text", "register.name"},
	{"email", "email", "register.email"},
	{"password", "password", "register.password"},
	{"password_confirmation", "password", "register.password_confirmation"},
}

var privacySections = []string{"collect", "use", "rights"}
