package handler

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResults(t *testing.T) {
	cmd := func() tea.Msg { return "test" }

	tests := []struct {
		name        string
		r           Result
		wantHandled bool
		wantMoved   bool
		wantCmd     bool
	}{
		{"not handled", NotHandled, false, false, false},
		{"handled without command", Handled(nil), true, false, false},
		{"handled with command", Handled(cmd), true, false, true},
		{"moved", Moved(nil), true, true, false},
		{"moved with command", Moved(cmd), true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Handled != tt.wantHandled {
				t.Errorf("Handled = %v, want %v", tt.r.Handled, tt.wantHandled)
			}
			if tt.r.Moved != tt.wantMoved {
				t.Errorf("Moved = %v, want %v", tt.r.Moved, tt.wantMoved)
			}
			if (tt.r.Cmd != nil) != tt.wantCmd {
				t.Errorf("Cmd set = %v, want %v", tt.r.Cmd != nil, tt.wantCmd)
			}
		})
	}
}

func TestChain(t *testing.T) {
	var calls []string
	record := func(name string, r Result) Func {
		return func(key string) Result {
			calls = append(calls, name+":"+key)
			return r
		}
	}

	t.Run("stops at first handler", func(t *testing.T) {
		calls = nil
		r := Chain("l",
			record("global", NotHandled),
			record("carousel", Moved(nil)),
			record("never", Handled(nil)),
		)
		if !r.Handled || !r.Moved {
			t.Errorf("Chain() = %+v, want handled and moved", r)
		}
		if want := []string{"global:l", "carousel:l"}; !slices.Equal(calls, want) {
			t.Errorf("calls = %v, want %v", calls, want)
		}
	})

	t.Run("none handle", func(t *testing.T) {
		calls = nil
		r := Chain("x", record("a", NotHandled), record("b", NotHandled))
		if r.Handled {
			t.Error("Chain() handled with no handler accepting")
		}
		if len(calls) != 2 {
			t.Errorf("calls = %v, want both handlers tried", calls)
		}
	})

	t.Run("no handlers", func(t *testing.T) {
		if Chain("x").Handled {
			t.Error("empty chain reported handled")
		}
	})
}
