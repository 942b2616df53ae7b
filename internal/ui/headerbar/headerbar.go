// Package headerbar renders the title line with one tab per carousel.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Title is the application name shown on the left.
const Title = "carousel"

var (
	activeStyle = lipgloss.NewStyle().
			Foreground(styles.T().Primary).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgMuted)

	separatorStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgSubtle)
)

// Render returns the header bar for the given width. tabs are the carousel
// titles and active is the index of the focused one.
// When every tab does not fit, only the focused tab is shown.
func Render(tabs []string, active, width int) string {
	if width < ui.MinWidth {
		return ""
	}

	title := styles.Gradient(Title, styles.T().Primary, styles.T().Secondary, true)
	titleWidth := lipgloss.Width(title)
	avail := width - titleWidth - 2
	if avail <= 0 || len(tabs) == 0 {
		return title
	}

	content := renderTabs(tabs, active)
	if lipgloss.Width(content) > avail {
		name := ""
		if active >= 0 && active < len(tabs) {
			name = tabs[active]
		}
		content = activeStyle.Render(render.Truncate(render.Sanitize(name), avail))
	}

	padLeft := max((width-lipgloss.Width(content))/2, titleWidth+2)
	padLeft = min(padLeft, width-lipgloss.Width(content))
	return title + strings.Repeat(" ", padLeft-titleWidth) + content
}

func renderTabs(tabs []string, active int) string {
	separator := separatorStyle.Render(" │ ")
	parts := make([]string, 0, len(tabs))
	for i, name := range tabs {
		name = render.Sanitize(name)
		if i == active {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	return strings.Join(parts, separator)
}
