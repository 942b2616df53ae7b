package carousel

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui/layout"
)

// MeasuredMsg carries a layout measurement back to the carousel that asked for it.
type MeasuredMsg struct {
	ID         int
	Metrics    layout.Metrics
	ItemHeight int
	seq        int
}

// measureRequest is a snapshot of what a measurement needs.
type measureRequest struct {
	id            int
	seq           int
	containerCols int
	cellWidth     int
	sample        func() string // renders the representative item; nil when empty
}

// measureCmd measures the container and one representative item off the
// update loop. Item widths are assumed uniform, so only one item is rendered.
func measureCmd(r measureRequest) tea.Cmd {
	return func() tea.Msg {
		msg := MeasuredMsg{ID: r.id, seq: r.seq}
		msg.Metrics.ContainerWidth = layout.ToPixels(r.containerCols, r.cellWidth)
		if r.sample != nil {
			view := r.sample()
			msg.Metrics.ItemWidth = layout.ToPixels(lipgloss.Width(view), r.cellWidth)
			msg.ItemHeight = lipgloss.Height(view)
		}
		return msg
	}
}
