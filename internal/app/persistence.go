package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/state"
)

// saveSession persists the focused carousel and every active index.
func (m *Model) saveSession() {
	if !m.remember {
		return
	}
	s := state.Session{Positions: make(map[string]int, len(m.Sections))}
	if f := m.Focused(); f != nil {
		s.Focused = f.Title
	}
	for _, sec := range m.Sections {
		if sec.Carousel.Len() > 0 {
			s.Positions[sec.Title] = sec.Carousel.Active()
		}
	}
	m.StateMgr.SaveSession(s)
}

// restoreSession applies a saved session. Positions go through Jump so a
// deck that shrank since the last run is clamped.
func (m *Model) restoreSession() {
	if !m.remember {
		return
	}
	s, err := m.StateMgr.GetSession()
	if err != nil {
		m.startup = append(m.startup, errmsg.Format(errmsg.OpStateRestore, err))
		m.logger.Warn("restore session", "error", err)
		return
	}
	if s == nil {
		return
	}
	for i := range m.Sections {
		sec := &m.Sections[i]
		if idx, ok := s.Position(sec.Title, sec.Carousel.Len()); ok {
			sec.Carousel.Jump(idx)
		}
		if sec.Title == s.Focused {
			m.Focus = i
		}
	}
	m.logger.Debug("session restored", "focused", s.Focused, "positions", len(s.Positions))
}

// watchState listens for failed background saves while persistence is on.
func (m Model) watchState() tea.Cmd {
	if !m.remember {
		return nil
	}
	return WatchStateErrors(m.StateMgr.Errors())
}

// handleStateErr logs a failed save, shows it and keeps listening.
func (m Model) handleStateErr(msg StateErrMsg) (tea.Model, tea.Cmd) {
	if !msg.Ok {
		return m, nil
	}
	m.logger.Warn("save session", "error", msg.Err)
	return m, tea.Batch(m.notify(errmsg.Format(errmsg.OpStateSave, msg.Err)), m.watchState())
}
