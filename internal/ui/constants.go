// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// MinWidth is the narrowest terminal the carousels render in.
	MinWidth = 20

	// ControlGap is the number of columns between the prev and next controls.
	ControlGap = 2

	// NotificationLimit caps how many notifications are stacked above the status line.
	NotificationLimit = 3
)
