package carousel

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// Indicator is one pagination marker.
type Indicator struct {
	Index  int
	Active bool
}

// Pagination renders one dot per item and maps clicks back to indices.
type Pagination struct {
	dots paginator.Model
}

// NewPagination creates dot pagination using the given active and inactive markers.
func NewPagination(active, inactive string) Pagination {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = active
	p.InactiveDot = inactive
	p.KeyMap = paginator.KeyMap{}
	return Pagination{dots: p}
}

// Indicators returns one indicator per item, marking the active one.
func (p Pagination) Indicators(n, active int) []Indicator {
	if n <= 0 {
		return nil
	}
	out := make([]Indicator, n)
	for i := range out {
		out[i] = Indicator{Index: i, Active: i == active}
	}
	return out
}

// View renders the indicators.
func (p Pagination) View(n, active int) string {
	if n <= 0 {
		return ""
	}
	dots := p.dots
	dots.PerPage = 1
	dots.TotalPages = n
	dots.Page = active
	return dots.View()
}

// IndicatorAt returns the index of the indicator drawn at column x.
func (p Pagination) IndicatorAt(x, n, active int) (int, bool) {
	if x < 0 || n <= 0 {
		return 0, false
	}
	activeW := lipgloss.Width(p.dots.ActiveDot)
	inactiveW := lipgloss.Width(p.dots.InactiveDot)
	col := 0
	for i := range n {
		w := inactiveW
		if i == active {
			w = activeW
		}
		if x < col+w {
			return i, true
		}
		col += w
	}
	return 0, false
}
