// Package handler provides a result type and chain function for key handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
	// Moved is set when the key changed an active index or the focus,
	// i.e. something worth persisting.
	Moved bool
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Moved creates a handled Result that changed navigation state.
func Moved(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd, Moved: true}
}

// Func attempts to handle a key.
type Func func(key string) Result

// Chain runs handlers in order until one handles the key.
func Chain(key string, handlers ...Func) Result {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return r
		}
	}
	return NotHandled
}
