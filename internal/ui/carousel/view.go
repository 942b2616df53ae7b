package carousel

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

const (
	prevLabel = "‹ prev"
	nextLabel = "next ›"
)

// Styles holds the look of controls and pagination.
type Styles struct {
	Control         lipgloss.Style
	ControlDisabled lipgloss.Style
	ActiveDot       string
	InactiveDot     string
}

// DefaultStyles builds Styles from the default theme.
func DefaultStyles() Styles {
	t := styles.T()
	return Styles{
		Control:         lipgloss.NewStyle().Foreground(t.FgBase).Background(t.BgCursor),
		ControlDisabled: t.S().Subtle,
		ActiveDot:       lipgloss.NewStyle().Foreground(t.Primary).Render("●") + " ",
		InactiveDot:     t.S().Muted.Render("○") + " ",
	}
}

// geometry holds the column layout of the item row.
type geometry struct {
	pad   int // columns before the first item
	gap   int // columns after each item
	item  int // columns of one item
	shift int // columns the row is shifted left
}

func (g geometry) unit() int {
	return g.item + g.gap
}

// geometry converts the pixel layout to columns. Padding and the unit width
// are floored so every item ItemsInView counts also fits on screen; the gap
// takes whatever the unit leaves after the item.
func (m Model[T]) geometry() geometry {
	g := geometry{
		pad: layout.FitColumns(layout.Padding(m.cfg.Spacing)/2, m.cellWidth),
		gap: layout.FitColumns(layout.Gap(m.cfg.Spacing), m.cellWidth),
	}
	if !m.metrics.Measured() {
		return g
	}
	unitPx := layout.UnitWidth(m.metrics.ItemWidth, m.cfg.Spacing)
	g.item = layout.ToColumns(m.metrics.ItemWidth, m.cellWidth)
	g.gap = max(layout.FitColumns(unitPx, m.cellWidth)-g.item, 0)
	g.shift = shiftColumns(m.Offset(), unitPx, g.unit())
	return g
}

// shiftColumns converts a pixel offset into whole columns of the rendered
// row, scaling by the unit width so a shift of k items moves exactly k units.
func shiftColumns(offset, unitPx float64, unitCols int) int {
	if unitPx <= 0 || offset >= 0 {
		return 0
	}
	return int(math.Round(-offset / unitPx * float64(unitCols)))
}

// Rows returns the number of rows View produces.
func (m Model[T]) Rows() int {
	if len(m.items) == 0 {
		return 0
	}
	rows := max(m.itemHeight, 1)
	if !m.cfg.HideControls {
		rows++
	}
	if m.cfg.Pagination {
		rows++
	}
	return rows
}

// View renders the item row, the controls and the pagination indicators.
// An empty carousel renders nothing.
func (m Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, m.itemLines()...)
	if !m.cfg.HideControls {
		lines = append(lines, m.controlsLine())
	}
	if m.cfg.Pagination {
		g := m.geometry()
		lines = append(lines, strings.Repeat(" ", g.pad)+m.pager.View(len(m.items), m.cursor.Pos()))
	}
	return strings.Join(lines, "\n")
}

func (m Model[T]) itemLines() []string {
	if len(m.items) == 0 || m.renderer == nil {
		return nil
	}

	g := m.geometry()
	placements := m.Placements()
	views := make([]string, 0, 2*len(m.items))
	gap := strings.Repeat(" ", g.gap)
	for i, item := range m.items {
		views = append(views, m.renderer.Render(item, placements[i]))
		if g.gap > 0 {
			views = append(views, gap)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	lines := strings.Split(row, "\n")
	width := m.Width()
	if width <= 0 {
		return lines
	}

	pad := strings.Repeat(" ", min(g.pad, width))
	visible := max(width-g.pad, 0)
	for i, line := range lines {
		cut := ansi.Cut(line, g.shift, g.shift+visible)
		lines[i] = pad + cut + strings.Repeat(" ", max(visible-lipgloss.Width(cut), 0))
	}
	return lines
}

func (m Model[T]) controlsLine() string {
	st := m.styles.Control
	if !m.ControlsEnabled() {
		st = m.styles.ControlDisabled
	}
	g := m.geometry()
	return strings.Repeat(" ", g.pad) +
		st.Render(prevLabel) +
		strings.Repeat(" ", ui.ControlGap) +
		st.Render(nextLabel)
}

// handleMouse interprets a pointer event relative to the carousel's origin.
func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	if len(m.items) == 0 {
		m.hovered = -1
		return
	}

	itemRows := max(m.itemHeight, 1)
	controlsRow, pagerRow := -1, -1
	next := itemRows
	if !m.cfg.HideControls {
		controlsRow = next
		next++
	}
	if m.cfg.Pagination {
		pagerRow = next
	}

	switch {
	case msg.Y >= 0 && msg.Y < itemRows:
		m.hovered = m.itemAt(msg.X)
	default:
		m.hovered = -1
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	g := m.geometry()
	x := msg.X - g.pad
	switch msg.Y {
	case controlsRow:
		if !m.ControlsEnabled() {
			return
		}
		prevW := lipgloss.Width(prevLabel)
		nextStart := prevW + ui.ControlGap
		switch {
		case x >= 0 && x < prevW:
			m.Prev()
		case x >= nextStart && x < nextStart+lipgloss.Width(nextLabel):
			m.Next()
		}
	case pagerRow:
		if i, ok := m.pager.IndicatorAt(x, len(m.items), m.cursor.Pos()); ok {
			m.Jump(i)
		}
	}
}

// itemAt returns the index of the item drawn at column x, or -1 for gaps,
// padding and positions past the last item.
func (m Model[T]) itemAt(x int) int {
	g := m.geometry()
	if g.item <= 0 || x < g.pad {
		return -1
	}
	col := x - g.pad + g.shift
	i := col / g.unit()
	if i >= len(m.items) || col%g.unit() >= g.item {
		return -1
	}
	return i
}
