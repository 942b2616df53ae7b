package carousel

import (
	"testing"
	"time"
)

func TestAutoplay_StartStop(t *testing.T) {
	a := NewAutoplay(7)
	if a.Running() {
		t.Fatal("new autoplay should not run")
	}

	if cmd := a.Start(time.Second); cmd == nil {
		t.Fatal("Start() returned nil command")
	}
	if !a.Running() || a.Interval() != time.Second {
		t.Errorf("after Start running=%v interval=%v, want true 1s", a.Running(), a.Interval())
	}

	a.Stop()
	if a.Running() || a.Interval() != 0 {
		t.Errorf("after Stop running=%v interval=%v, want false 0", a.Running(), a.Interval())
	}
}

func TestAutoplay_NonPositiveIntervalStaysStopped(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		a := NewAutoplay(1)
		if cmd := a.Start(d); cmd != nil || a.Running() {
			t.Errorf("Start(%v) should not run", d)
		}
	}
}

func TestAutoplay_TickDelivered(t *testing.T) {
	a := NewAutoplay(3)
	cmd := a.Start(time.Millisecond)
	if cmd == nil {
		t.Fatal("Start() returned nil command")
	}

	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatal("command did not produce a TickMsg")
	}
	if msg.ID != 3 {
		t.Errorf("tick ID = %d, want 3", msg.ID)
	}

	fired, next := a.Update(msg)
	if !fired || next == nil {
		t.Errorf("Update() = %v, %v, want fired with next tick", fired, next != nil)
	}
}

func TestAutoplay_StaleTicksDropped(t *testing.T) {
	a := NewAutoplay(3)
	a.Start(time.Second)
	stale := TickMsg{ID: 3, tag: a.tag}

	a.Start(2 * time.Second)
	if fired, cmd := a.Update(stale); fired || cmd != nil {
		t.Error("tick from a replaced subscription must be dropped")
	}

	current := TickMsg{ID: 3, tag: a.tag}
	a.Stop()
	if fired, cmd := a.Update(current); fired || cmd != nil {
		t.Error("tick after Stop must be dropped")
	}
}

func TestAutoplay_OtherCarouselIgnored(t *testing.T) {
	a := NewAutoplay(3)
	a.Start(time.Second)
	if fired, _ := a.Update(TickMsg{ID: 4, tag: a.tag}); fired {
		t.Error("tick for another carousel fired")
	}
}

func TestNextIDUnique(t *testing.T) {
	if a, b := nextID(), nextID(); a == b {
		t.Errorf("nextID() returned %d twice", a)
	}
}
