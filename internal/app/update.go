package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/handler"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/stderr"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/carousel"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case carousel.MeasuredMsg:
		return m, m.routeByID(msg.ID, msg)

	case carousel.TickMsg:
		return m, m.routeByID(msg.ID, msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case NotifyMsg:
		return m, m.notify(msg.Message)

	case NotificationClearMsg:
		for i, n := range m.Notifications {
			if n.ID == msg.ID {
				m.Notifications = append(m.Notifications[:i:i], m.Notifications[i+1:]...)
				break
			}
		}
		return m, nil

	case StderrMsg:
		if !msg.Ok {
			return m, nil
		}
		m.logger.Warn("stderr", "line", msg.Line)
		return m, tea.Batch(m.notify(msg.Line), WatchStderr(stderr.Lines()))

	case StateErrMsg:
		return m.handleStateErr(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	cmds := make([]tea.Cmd, 0, len(m.Sections))
	for i := range m.Sections {
		var cmd tea.Cmd
		m.Sections[i].Carousel, cmd = m.Sections[i].Carousel.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: m.carouselHeight(i),
		})
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// routeByID delivers a carousel-addressed message to its carousel only.
func (m *Model) routeByID(id int, msg tea.Msg) tea.Cmd {
	for i := range m.Sections {
		if m.Sections[i].Carousel.ID() == id {
			var cmd tea.Cmd
			m.Sections[i].Carousel, cmd = m.Sections[i].Carousel.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := handler.Chain(msg.String(),
		m.handleGlobalKey,
		m.handleAutoplayKey,
		func(string) handler.Result { return m.forwardKey(msg) },
	)
	if r.Moved {
		m.saveSession()
	}
	return m, r.Cmd
}

func (m *Model) handleGlobalKey(key string) handler.Result {
	switch m.resolver.Resolve(key) {
	case keymap.ActionQuit:
		m.Close()
		m.logger.Info("quit")
		return handler.Handled(tea.Quit)
	case keymap.ActionFocusNext:
		m.SetFocus(m.Focus + 1)
		return handler.Moved(nil)
	case keymap.ActionFocusPrev:
		m.SetFocus(m.Focus - 1)
		return handler.Moved(nil)
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		return handler.Handled(nil)
	}
	return handler.NotHandled
}

func (m *Model) handleAutoplayKey(key string) handler.Result {
	f := m.Focused()
	if f == nil {
		return handler.NotHandled
	}

	cfg := f.Carousel.Config()
	switch m.resolver.Resolve(key) {
	case keymap.ActionToggleAutoplay:
		cfg.AutoPlay = !cfg.AutoPlay
		if cfg.AutoPlay && cfg.Interval <= 0 {
			cfg.Interval = DefaultInterval
		}
	case keymap.ActionFaster:
		cfg.Interval = stepInterval(cfg.Interval, true)
	case keymap.ActionSlower:
		cfg.Interval = stepInterval(cfg.Interval, false)
	default:
		return handler.NotHandled
	}

	cmd := f.Carousel.SetConfig(cfg)
	m.logger.Debug("autoplay resubscribed",
		"carousel", f.Title, "running", f.Carousel.AutoplayRunning(), "interval", cfg.Interval)
	return handler.Handled(tea.Batch(cmd, m.notify(autoplaySummary(f.Title, cfg))))
}

// forwardKey hands a key to the focused carousel.
func (m *Model) forwardKey(msg tea.KeyMsg) handler.Result {
	f := m.Focused()
	if f == nil {
		return handler.NotHandled
	}
	before := f.Carousel.Active()
	var cmd tea.Cmd
	f.Carousel, cmd = f.Carousel.Update(msg)
	if f.Carousel.Active() == before {
		return handler.Result{Cmd: cmd}
	}
	return handler.Moved(cmd)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	idx, row, ok := m.sectionAt(msg.Y)
	for i := range m.Sections {
		if !ok || i != idx {
			m.Sections[i].Carousel.ClearHover()
		}
	}
	if !ok {
		return m, nil
	}

	moved := false
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && idx != m.Focus {
		m.SetFocus(idx)
		moved = true
	}

	var cmd tea.Cmd
	if row >= 0 {
		sec := &m.Sections[idx]
		before := sec.Carousel.Active()
		local := msg
		local.Y = row
		sec.Carousel, cmd = sec.Carousel.Update(local)
		moved = moved || sec.Carousel.Active() != before
	}

	if moved {
		m.saveSession()
	}
	return m, cmd
}

// notify shows a notification, dropping the oldest beyond the limit.
func (m *Model) notify(message string) tea.Cmd {
	if message == "" {
		return nil
	}
	m.nextNotifID++
	id := m.nextNotifID
	m.Notifications = append(m.Notifications, Notification{ID: id, Message: message})
	if extra := len(m.Notifications) - ui.NotificationLimit; extra > 0 {
		m.Notifications = m.Notifications[extra:]
	}
	return NotificationClearCmd(id)
}

// stepInterval halves or doubles an autoplay interval within bounds.
func stepInterval(d time.Duration, faster bool) time.Duration {
	if d <= 0 {
		return DefaultInterval
	}
	if faster {
		return max(d/2, MinInterval)
	}
	return min(d*2, MaxInterval)
}

func autoplaySummary(title string, cfg carousel.Config) string {
	if !cfg.AutoplayActive() {
		return fmt.Sprintf("%s: autoplay off (every %s)", title, cfg.Interval)
	}
	return fmt.Sprintf("%s: autoplay every %s", title, cfg.Interval)
}
