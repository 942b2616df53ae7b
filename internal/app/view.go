package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	titles := make([]string, len(m.Sections))
	for i, s := range m.Sections {
		titles[i] = s.Title
	}

	lines := []string{headerbar.Render(titles, m.Focus, m.Width)}
	lines = append(lines, m.renderBody()...)
	lines = append(lines, m.renderNotifications()...)
	lines = append(lines, m.renderHelp()...)
	lines = append(lines, m.renderStatus())
	return strings.Join(lines, "\n")
}

// renderBody draws the visible sections, clipped and padded to the body height.
func (m Model) renderBody() []string {
	body := m.bodyHeight()
	lines := make([]string, 0, body)

	if len(m.Sections) == 0 {
		lines = append(lines, styles.T().S().Muted.Render("no carousels configured"))
	}

	for _, p := range m.visibleSections() {
		sec := m.Sections[p.index]
		title := styles.SectionTitle(p.index == m.Focus).Render(render.Truncate(sec.Title, m.Width))
		lines = append(lines, title)
		if sec.Carousel.Len() == 0 {
			lines = append(lines, styles.T().S().Subtle.Render("  no items"))
			continue
		}
		lines = append(lines, strings.Split(sec.Carousel.View(), "\n")...)
	}

	if len(lines) > body {
		lines = lines[:body]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}
	return lines
}

func (m Model) renderNotifications() []string {
	n := m.notificationHeight()
	if n == 0 {
		return nil
	}
	st := styles.T().S().Warning
	out := make([]string, 0, n)
	for _, notif := range m.Notifications[len(m.Notifications)-n:] {
		out = append(out, st.Render(render.Truncate(notif.Message, m.Width)))
	}
	return out
}

func (m Model) renderHelp() []string {
	if !m.ShowHelp {
		return nil
	}
	s := styles.T().S()
	out := make([]string, 0, len(keymap.Contexts))
	for _, ctx := range keymap.Contexts {
		parts := make([]string, 0)
		for _, b := range keymap.ByContext(ctx) {
			parts = append(parts, keymap.KeyLabel(b.Keys)+" "+b.Description)
		}
		line := fmt.Sprintf("%-9s %s", ctx, strings.Join(parts, " · "))
		out = append(out, s.Muted.Render(render.Truncate(line, m.Width)))
	}
	return out
}

// renderStatus shows position, page and autoplay state of the focused carousel.
func (m Model) renderStatus() string {
	s := styles.T().S()
	right := s.Subtle.Render("? help")

	left := ""
	if f := m.Focused(); f != nil {
		left = statusText(f)
	}
	left = render.Truncate(left, max(m.Width-lipgloss.Width(right)-1, 0))

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.Base.Render(left) + strings.Repeat(" ", gap) + right
}

func statusText(f *Section) string {
	c := f.Carousel
	if c.Len() == 0 {
		return f.Title + "  no items"
	}

	parts := []string{f.Title, fmt.Sprintf("%d of %d", c.Active()+1, c.Len())}
	if c.Config().BatchScroll && c.Metrics().Measured() {
		parts = append(parts, fmt.Sprintf("page %d/%d", c.Page()+1, c.PageCount()))
	}
	if c.AutoplayRunning() {
		parts = append(parts, fmt.Sprintf("autoplay %s", c.Config().Interval))
	} else {
		parts = append(parts, "autoplay off")
	}
	return strings.Join(parts, " · ")
}
