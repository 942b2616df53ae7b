package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is emitted by the autoplay timer.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Autoplay is a repeating timer built from one-shot ticks. Each accepted tick
// schedules the next one, so ticks missed while the program was suspended are
// not replayed.
//
// Stop and Start bump a tag; ticks carrying an older tag are dropped, which
// guarantees no tick from a previous subscription reaches the carousel.
type Autoplay struct {
	id       int
	tag      int
	interval time.Duration
	running  bool
}

// NewAutoplay creates a stopped timer bound to a carousel id.
func NewAutoplay(id int) Autoplay {
	return Autoplay{id: id}
}

// Running reports whether a subscription is active.
func (a Autoplay) Running() bool {
	return a.running
}

// Interval returns the period of the active subscription.
func (a Autoplay) Interval() time.Duration {
	return a.interval
}

// Start replaces any active subscription with one firing every interval.
// A non-positive interval leaves the timer stopped.
func (a *Autoplay) Start(interval time.Duration) tea.Cmd {
	a.Stop()
	if interval <= 0 {
		return nil
	}
	a.interval = interval
	a.running = true
	return a.tick()
}

// Stop cancels the active subscription. Pending ticks become stale.
func (a *Autoplay) Stop() {
	a.tag++
	a.running = false
	a.interval = 0
}

// Update accepts a tick. It returns true when the tick belongs to the active
// subscription, together with the command scheduling the next tick.
func (a *Autoplay) Update(msg TickMsg) (bool, tea.Cmd) {
	if !a.running || msg.ID != a.id || msg.tag != a.tag {
		return false, nil
	}
	return true, a.tick()
}

func (a Autoplay) tick() tea.Cmd {
	id, tag := a.id, a.tag
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
