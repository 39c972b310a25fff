package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func windows() map[string]Window {
	return map[string]Window{
		"paged 6 of 6":     Paged(6, 6),
		"paged 13 of 4":    Paged(13, 4),
		"paged 12 of 4":    Paged(12, 4),
		"rotating 5 of 3":  Rotating(5, 3),
		"rotating 2 of 3":  Rotating(2, 3),
		"single 8":         Single(8),
		"single 1":         Single(1),
		"zero page size":   Paged(3, 0),
		"rotating 10 of 3": Rotating(10, 3),
	}
}

func TestNextPrevAreInverse(t *testing.T) {
	for name, w := range windows() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= w.MaxIndex(); i++ {
				if got := w.Prev(w.Next(i)); got != i {
					t.Errorf("Prev(Next(%d)) = %d", i, got)
				}
				if got := w.Next(w.Prev(i)); got != i {
					t.Errorf("Next(Prev(%d)) = %d", i, got)
				}
			}
		})
	}
}

func TestIndexStaysInRange(t *testing.T) {
	for name, w := range windows() {
		t.Run(name, func(t *testing.T) {
			for i := -20; i <= 20; i++ {
				for _, got := range []int{w.Normalize(i), w.Next(i), w.Prev(i)} {
					if got < 0 || got > w.MaxIndex() {
						t.Errorf("Index %d out of [0, %d] for input %d", got, w.MaxIndex(), i)
					}
				}
			}
		})
	}
}

func TestRotationReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		w := Rotating(n, 3)
		for start := 0; start < n; start++ {
			i := start
			for range n {
				i = w.Next(i)
			}
			if i != start {
				t.Errorf("Length %d: %d calls to Next from %d ended at %d", n, n, start, i)
			}
		}
	}
}

func TestSinglePage(t *testing.T) {
	w := Paged(6, 6)
	if w.Pages() != 1 {
		t.Fatalf("Expected exactly one page, got %d", w.Pages())
	}
	if w.Next(0) != 0 || w.Prev(0) != 0 {
		t.Errorf("Expected next and previous to stay at 0, got %d and %d", w.Next(0), w.Prev(0))
	}
	if w.Navigable() {
		t.Errorf("Expected a single page not to be navigable")
	}
}

func TestLightboxWraps(t *testing.T) {
	w := Single(8)
	if got := w.Next(7); got != 0 {
		t.Errorf("Expected Next(7) to wrap to 0, got %d", got)
	}
	if got := w.Prev(0); got != 7 {
		t.Errorf("Expected Prev(0) to wrap to 7, got %d", got)
	}
}

func TestEmptyWindow(t *testing.T) {
	for _, w := range []Window{Paged(0, 6), Rotating(0, 3), Single(0)} {
		if w.Navigable() {
			t.Errorf("Expected empty window %+v not to be navigable", w)
		}
		if w.Next(3) != 0 || w.Prev(3) != 0 || w.MaxIndex() != 0 {
			t.Errorf("Expected empty window %+v to stay at 0", w)
		}
		if w.Positions(0) != nil {
			t.Errorf("Expected no positions for empty window %+v", w)
		}
	}

	page := Slice([]string(nil), Paged(0, 6), 2)
	if !page.Empty() || page.Navigable {
		t.Errorf("Expected empty page, got %+v", page)
	}
}

func TestPositions(t *testing.T) {
	testCases := []struct {
		name     string
		window   Window
		index    int
		expected []int
	}{
		{name: "first page", window: Paged(13, 4), index: 0, expected: []int{0, 1, 2, 3}},
		{name: "last short page", window: Paged(13, 4), index: 3, expected: []int{12}},
		{name: "page wraps from below", window: Paged(13, 4), index: -1, expected: []int{12}},
		{name: "rotation wraps items", window: Rotating(5, 3), index: 4, expected: []int{4, 0, 1}},
		{name: "rotation shorter than window", window: Rotating(2, 3), index: 1, expected: []int{1, 0}},
		{name: "single item", window: Single(8), index: 7, expected: []int{7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, tc.window.Positions(tc.index)); diff != "" {
				t.Errorf("Positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Slice(items, Rotating(0, 3), 3)

	expected := Page[string]{
		Items:     []string{"d", "e", "a"},
		Index:     3,
		Prev:      2,
		Next:      4,
		MaxIndex:  4,
		Navigable: true,
	}
	if diff := cmp.Diff(expected, page); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}
}
