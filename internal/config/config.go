package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "carousel"

// Defaults applied when a key is missing or out of range.
const (
	DefaultSpacing     = 10.0
	DefaultScaleFactor = 1.1
	DefaultCardWidth   = 30
	DefaultLogLevel    = "info"
	DemoInterval       = "1s"
)

type Config struct {
	LogLevel         string  `koanf:"log_level"`         // "debug", "info", "warn" or "error"
	LogFile          string  `koanf:"log_file"`          // empty means XDG state dir
	Items            string  `koanf:"items"`             // YAML deck; empty means built-in demo deck
	CellWidth        int     `koanf:"cell_width"`        // pixels per column; 0 detects from the terminal
	CardWidth        int     `koanf:"card_width"`        // card width in columns (default: 30)
	RememberPosition *bool   `koanf:"remember_position"` // restore active items on start (default: false)
	ScaleFactor      float64 `koanf:"scale_factor"`      // emphasis of the active item (default: 1.1)

	Carousels []CarouselConfig `koanf:"carousels"`
}

// CarouselConfig holds the settings of one carousel section.
type CarouselConfig struct {
	Title        string   `koanf:"title"`
	Spacing      *float64 `koanf:"spacing"`        // default: 10
	BatchScroll  bool     `koanf:"batch_scroll"`   // advance whole pages
	AutoPlay     bool     `koanf:"auto_play"`      // requires interval
	Interval     string   `koanf:"interval"`       // Go duration ("1s") or milliseconds ("1000")
	HideControls bool     `koanf:"hide_controls"`  // no prev/next controls
	Pagination   bool     `koanf:"pagination"`     // one indicator per item
	ScaleOnHover bool     `koanf:"scale_on_hover"` // emphasize the hovered card
}

// Load reads config.toml from the XDG config dir, then ./config.toml, then
// the explicit path if given (last wins). An explicit path must exist.
func Load(explicit string) (*Config, error) {
	return loadFrom(getConfigPaths(), explicit)
}

func loadFrom(paths []string, explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Items = expandPath(cfg.Items)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/carousel/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultLogFile returns the log path used when log_file is not set.
func DefaultLogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// Remember reports whether active items are saved and restored on start.
// It is off unless remember_position is set.
func (c *Config) Remember() bool {
	return c.RememberPosition != nil && *c.RememberPosition
}

// GetLogLevel returns the log level with the default applied.
func (c *Config) GetLogLevel() string {
	switch lvl := strings.ToLower(strings.TrimSpace(c.LogLevel)); lvl {
	case "debug", "info", "warn", "error":
		return lvl
	}
	return DefaultLogLevel
}

// GetCardWidth returns the card width with the default applied.
func (c *Config) GetCardWidth() int {
	if c.CardWidth <= 0 {
		return DefaultCardWidth
	}
	return c.CardWidth
}

// GetScaleFactor returns the scale factor with the default applied.
func (c *Config) GetScaleFactor() float64 {
	if c.ScaleFactor <= 0 {
		return DefaultScaleFactor
	}
	return c.ScaleFactor
}

// GetCarousels returns the configured carousels, or the demo page when none are set.
func (c *Config) GetCarousels() []CarouselConfig {
	if len(c.Carousels) > 0 {
		return c.Carousels
	}
	return DemoCarousels()
}

// DemoCarousels returns the four sections of the demo page.
func DemoCarousels() []CarouselConfig {
	return []CarouselConfig{
		{Title: "Individual Scroll"},
		{Title: "Batch Scroll", BatchScroll: true},
		{Title: "Automatic Scroll", AutoPlay: true, Interval: DemoInterval, HideControls: true},
		{Title: "Automatic Batch Scroll", AutoPlay: true, Interval: DemoInterval, HideControls: true, BatchScroll: true},
	}
}

// GetSpacing returns the spacing with the default applied. Negative values become 0.
func (c CarouselConfig) GetSpacing() float64 {
	if c.Spacing == nil {
		return DefaultSpacing
	}
	return max(*c.Spacing, 0)
}

// ErrInvalidInterval is returned for an interval that is neither a duration nor milliseconds.
var ErrInvalidInterval = errors.New("invalid interval")

// maxIntervalMillis is the largest millisecond count a time.Duration holds.
const maxIntervalMillis = float64(math.MaxInt64) / float64(time.Millisecond)

// GetInterval parses the autoplay interval. An empty interval returns 0.
func (c CarouselConfig) GetInterval() (time.Duration, error) {
	s := strings.TrimSpace(c.Interval)
	if s == "" {
		return 0, nil
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(ms) || ms <= 0 || ms >= maxIntervalMillis {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
		}
		return time.Duration(ms * float64(time.Millisecond)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	return d, nil
}
