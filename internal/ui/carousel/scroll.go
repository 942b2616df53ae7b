package carousel

// Scroller derives the horizontal shift of the item row.
//
// It remembers the first item of the visible window so the row only moves
// when the active item leaves it. In batch mode the window is always aligned
// to a page of itemsInView items.
type Scroller struct {
	first  int
	offset float64
}

// Offset returns the last computed shift. It is zero or negative.
func (s Scroller) Offset() float64 {
	return s.offset
}

// First returns the index of the first item in the visible window.
func (s Scroller) First() int {
	return s.first
}

// Reset returns to an unshifted row.
func (s *Scroller) Reset() {
	s.first = 0
	s.offset = 0
}

// Update recomputes the shift for the active index and returns it.
// unit is the width of one item plus its gap. When unit is not positive
// (nothing measured yet) the row is left unshifted.
func (s *Scroller) Update(active, itemsInView int, unit float64, batch bool) float64 {
	if unit <= 0 {
		s.offset = 0
		return 0
	}
	itemsInView = max(itemsInView, 1)

	if batch {
		s.first = Page(active, itemsInView) * itemsInView
	} else if active < s.first || active >= s.first+itemsInView {
		s.first = active
	}

	s.offset = -unit * float64(s.first)
	return s.offset
}

// Page returns the page holding index i when pages have itemsInView items.
func Page(i, itemsInView int) int {
	if itemsInView <= 0 || i < 0 {
		return 0
	}
	return i / itemsInView
}

// PageCount returns how many pages n items fill.
func PageCount(n, itemsInView int) int {
	if n <= 0 {
		return 0
	}
	itemsInView = max(itemsInView, 1)
	return (n + itemsInView - 1) / itemsInView
}
