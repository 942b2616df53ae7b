// Package carousel provides a horizontally scrolling carousel component:
// it measures the viewport, derives how many items fit, tracks the active
// item and computes the shift and per-item scale handed to the renderer.
package carousel

import "time"

// Defaults for Config fields.
const (
	DefaultSpacing     = 10
	DefaultScaleFactor = 1.1
)

// Config holds the settings of one carousel instance.
// Replace it through Model.SetConfig so the autoplay subscription is rebuilt.
type Config struct {
	Spacing      float64       // one unit of gap and edge padding
	BatchScroll  bool          // shift whole pages instead of single items
	AutoPlay     bool          // advance on a timer
	Interval     time.Duration // autoplay period, required when AutoPlay is set
	HideControls bool          // suppress prev/next controls
	Pagination   bool          // show one indicator per item
	ScaleOnHover bool          // emphasize the item under the pointer
	ScaleFactor  float64       // scale of the emphasized item (default 1.1)
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{
		Spacing:     DefaultSpacing,
		ScaleFactor: DefaultScaleFactor,
	}
}

// Normalize returns a copy with out-of-range values replaced.
func (c Config) Normalize() Config {
	if c.Spacing < 0 {
		c.Spacing = 0
	}
	if c.ScaleFactor <= 0 {
		c.ScaleFactor = DefaultScaleFactor
	}
	if c.Interval < 0 {
		c.Interval = 0
	}
	return c
}

// AutoplayActive reports whether the autoplay timer should run.
// AutoPlay without a positive interval is treated as disabled.
func (c Config) AutoplayActive() bool {
	return c.AutoPlay && c.Interval > 0
}
