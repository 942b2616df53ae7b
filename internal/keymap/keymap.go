package keymap

import "strings"

// Binding maps keys to an action, with a description for the help view.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "autoplay" or "carousel"
}

// Bindings is the application's key map.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionFocusNext, []string{"tab", "j", "down"}, "Next carousel", "global"},
	{ActionFocusPrev, []string{"shift+tab", "k", "up"}, "Previous carousel", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Autoplay
	{ActionToggleAutoplay, []string{"a", " "}, "Start/stop autoplay", "autoplay"},
	{ActionFaster, []string{"+", "="}, "Shorter interval", "autoplay"},
	{ActionSlower, []string{"-", "_"}, "Longer interval", "autoplay"},

	// Carousel
	{ActionPrev, []string{"h", "left"}, "Previous item", "carousel"},
	{ActionNext, []string{"l", "right"}, "Next item", "carousel"},
	{ActionFirst, []string{"g", "home"}, "First item", "carousel"},
	{ActionLast, []string{"G", "end"}, "Last item", "carousel"},
	{ActionJump, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Jump to item", "carousel"},
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"global", "autoplay", "carousel"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyLabel formats keys for display, collapsing the digit row.
func KeyLabel(keys []string) string {
	if len(keys) == 9 && keys[0] == "1" && keys[8] == "9" {
		return "1-9"
	}
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}
