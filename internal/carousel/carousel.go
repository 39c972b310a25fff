// Package carousel implements a windowed index over an ordered collection.
//
// A Window exposes a fixed-size visible slice of a collection of Len items.
// With PageWrap the index counts pages and advancing moves a whole page; with
// ItemWrap the index is the first visible item and advancing moves one item,
// the visible slice wrapping around the end of the collection.
package carousel

type Wrap int

const (
	PageWrap Wrap = iota
	ItemWrap
)

type Window struct {
	Len  int
	Size int
	Wrap Wrap
}

// Paged returns a page-wrapping window of the given page size.
func Paged(n, size int) Window {
	return Window{Len: n, Size: size, Wrap: PageWrap}
}

// Rotating returns an item-wrapping window showing size items at once.
func Rotating(n, size int) Window {
	return Window{Len: n, Size: size, Wrap: ItemWrap}
}

// Single returns a window over one item at a time, as used by a lightbox.
func Single(n int) Window {
	return Window{Len: n, Size: 1, Wrap: ItemWrap}
}

func (w Window) size() int {
	if w.Size < 1 {
		return 1
	}
	return w.Size
}

func (w Window) Empty() bool {
	return w.Len <= 0
}

// Pages is the number of distinct index positions.
func (w Window) Pages() int {
	if w.Empty() {
		return 0
	}
	if w.Wrap == ItemWrap {
		return w.Len
	}
	return (w.Len + w.size() - 1) / w.size()
}

func (w Window) MaxIndex() int {
	if w.Empty() {
		return 0
	}
	return w.Pages() - 1
}

// Navigable reports whether next and previous lead anywhere.
func (w Window) Navigable() bool {
	return w.MaxIndex() > 0
}

// Normalize maps any index into [0, MaxIndex()], wrapping out-of-range values.
func (w Window) Normalize(i int) int {
	n := w.Pages()
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (w Window) Next(i int) int {
	return w.Normalize(w.Normalize(i) + 1)
}

func (w Window) Prev(i int) int {
	return w.Normalize(w.Normalize(i) - 1)
}

// Positions returns the collection indices visible at index i.
func (w Window) Positions(i int) []int {
	if w.Empty() {
		return nil
	}
	i = w.Normalize(i)
	if w.Wrap == ItemWrap {
		count := min(w.size(), w.Len)
		positions := make([]int, count)
		for k := range positions {
			positions[k] = (i + k) % w.Len
		}
		return positions
	}
	start := i * w.size()
	end := min(start+w.size(), w.Len)
	positions := make([]int, 0, end-start)
	for k := start; k < end; k++ {
		positions = append(positions, k)
	}
	return positions
}

// Page is the visible part of a collection together with its navigation state.
type Page[T any] struct {
	Items     []T
	Index     int
	Prev      int
	Next      int
	MaxIndex  int
	Navigable bool
}

func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// Slice cuts the window at index i out of items. The window length is taken
// from items, whatever w.Len says.
func Slice[T any](items []T, w Window, i int) Page[T] {
	w.Len = len(items)
	page := Page[T]{
		Index:     w.Normalize(i),
		Prev:      w.Prev(i),
		Next:      w.Next(i),
		MaxIndex:  w.MaxIndex(),
		Navigable: w.Navigable(),
	}
	for _, pos := range w.Positions(i) {
		page.Items = append(page.Items, items[pos])
	}
	return page
}
