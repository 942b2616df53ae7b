// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionHelp      Action = "help"

	// Autoplay actions, applied to the focused carousel
	ActionToggleAutoplay Action = "toggle_autoplay"
	ActionFaster         Action = "faster"
	ActionSlower         Action = "slower"

	// Carousel navigation, handled by the carousel itself
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionFirst Action = "first"
	ActionLast  Action = "last"
	ActionJump  Action = "jump"
)
