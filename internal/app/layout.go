package app

import (
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// placedSection is a section drawn at screen row y.
type placedSection struct {
	index int
	y     int
}

// sectionHeight returns the rows of section i. An empty carousel shows one
// placeholder row instead of its view.
func (m Model) sectionHeight(i int) int {
	c := m.Sections[i].Carousel
	if c.Len() == 0 {
		return layout.TitleHeight + 1
	}
	return layout.TitleHeight + c.Rows()
}

func (m Model) helpHeight() int {
	if !m.ShowHelp {
		return 0
	}
	return len(keymap.Contexts)
}

func (m Model) notificationHeight() int {
	return min(len(m.Notifications), ui.NotificationLimit)
}

// bodyHeight returns the rows available to carousel sections.
func (m Model) bodyHeight() int {
	return max(layout.ContentHeight(m.Height)-m.helpHeight()-m.notificationHeight(), 0)
}

// visibleSections returns the sections that start inside the body, scrolled
// so that the focused section is shown.
func (m Model) visibleSections() []placedSection {
	n := len(m.Sections)
	body := m.bodyHeight()
	if n == 0 || body == 0 {
		return nil
	}

	first := 0
	for first < m.Focus {
		h := 0
		for i := first; i <= m.Focus; i++ {
			h += m.sectionHeight(i)
		}
		if h <= body {
			break
		}
		first++
	}

	var placed []placedSection
	y := 0
	for i := first; i < n && y < body; i++ {
		placed = append(placed, placedSection{index: i, y: layout.HeaderHeight + y})
		y += m.sectionHeight(i)
	}
	return placed
}

// sectionAt returns the section drawn at screen row y and the row relative
// to that section's carousel (negative on the title row).
func (m Model) sectionAt(y int) (index, row int, ok bool) {
	body := layout.HeaderHeight + m.bodyHeight()
	if y < layout.HeaderHeight || y >= body {
		return 0, 0, false
	}
	for _, p := range m.visibleSections() {
		if y >= p.y && y < p.y+m.sectionHeight(p.index) {
			return p.index, y - p.y - layout.TitleHeight, true
		}
	}
	return 0, 0, false
}

// carouselHeight returns the rows a section's carousel is sized to.
func (m Model) carouselHeight(i int) int {
	cfg := m.Sections[i].Carousel.Config()
	return layout.SectionHeight(m.renderer.Height(), !cfg.HideControls, cfg.Pagination) - layout.TitleHeight
}
