package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotifyMsg asks the model to show a notification.
type NotifyMsg struct {
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// StderrMsg carries a line written to stderr while the TUI was running.
// Ok is false once capture has stopped.
type StderrMsg struct {
	Line string
	Ok   bool
}

// StateErrMsg carries a failed background session save.
// Ok is false once the state store has stopped reporting.
type StateErrMsg struct {
	Err error
	Ok  bool
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

func notifyCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Message: msg}
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStderr returns a command that waits for the next captured stderr line.
func WatchStderr(ch <-chan string) tea.Cmd {
	return waitForChannel(ch, func(line string, ok bool) tea.Msg {
		return StderrMsg{Line: line, Ok: ok}
	})
}

// WatchStateErrors returns a command that waits for the next failed session save.
func WatchStateErrors(ch <-chan error) tea.Cmd {
	return waitForChannel(ch, func(err error, ok bool) tea.Msg {
		return StateErrMsg{Err: err, Ok: ok}
	})
}
