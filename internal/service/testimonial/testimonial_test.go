package testimonial

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrammler/storefront/internal/entity"
)

type mockReviews struct {
	reviews []entity.Testimonial
	err     error
	calls   int
}

func (m *mockReviews) ListReviews(ctx context.Context) ([]entity.Testimonial, error) {
	m.calls++
	return m.reviews, m.err
}

func reviews(n int) []entity.Testimonial {
	result := make([]entity.Testimonial, n)
	for i := range result {
		result[i] = entity.Testimonial{ID: i + 1, Rating: 5}
	}
	return result
}

func ids(items []entity.Testimonial) []int {
	var result []int
	for _, item := range items {
		result = append(result, item.ID)
	}
	return result
}

func TestLoadFailureYieldsEmptyList(t *testing.T) {
	ts := NewTestimonialService(&mockReviews{err: errors.New("connection refused")})

	if got := ts.Load(context.Background()); len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}

	page := ts.Window(context.Background(), 2)
	if !page.Empty() || page.Navigable {
		t.Errorf("Expected empty, non-navigable window, got %+v", page)
	}
}

func TestWindowRotates(t *testing.T) {
	mock := &mockReviews{reviews: reviews(5)}
	ts := NewTestimonialService(mock)

	testCases := []struct {
		start    int
		expected []int
	}{
		{start: 0, expected: []int{1, 2, 3}},
		{start: 3, expected: []int{4, 5, 1}},
		{start: 4, expected: []int{5, 1, 2}},
		{start: 5, expected: []int{1, 2, 3}},
	}

	for _, tc := range testCases {
		page := ts.Window(context.Background(), tc.start)
		if diff := cmp.Diff(tc.expected, ids(page.Items)); diff != "" {
			t.Errorf("Start %d mismatch (-want +got):\n%s", tc.start, diff)
		}
	}

	if mock.calls != len(testCases) {
		t.Errorf("Expected one fetch per window, got %d fetches", mock.calls)
	}
}

func TestWindowFullRotation(t *testing.T) {
	ts := NewTestimonialService(&mockReviews{reviews: reviews(4)})

	start := 1
	page := ts.Window(context.Background(), start)
	for range 4 {
		page = ts.Window(context.Background(), page.Next)
	}
	if page.Index != start {
		t.Errorf("Expected to return to %d after a full rotation, got %d", start, page.Index)
	}
}

func TestWindowShorterThanSize(t *testing.T) {
	ts := NewTestimonialService(&mockReviews{reviews: reviews(2)})

	page := ts.Window(context.Background(), 1)
	if diff := cmp.Diff([]int{2, 1}, ids(page.Items)); diff != "" {
		t.Errorf("Window mismatch (-want +got):\n%s", diff)
	}
}
