// Package app stacks several carousels into one screen and routes focus,
// keys, mouse and timers between them.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/logging"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/stderr"
	"github.com/llehouerou/carousel/internal/ui/card"
	"github.com/llehouerou/carousel/internal/ui/carousel"
)

// Section is one titled carousel on the page.
type Section struct {
	Title    string
	Carousel carousel.Model[card.Card]
}

// Model is the root application model.
type Model struct {
	Sections []Section
	Focus    int
	ShowHelp bool

	Notifications []Notification
	nextNotifID   int64

	StateMgr state.Interface
	remember bool
	resolver *keymap.Resolver
	logger   *slog.Logger
	renderer *card.Renderer
	startup  []string

	Width  int
	Height int
}

// Options are the inputs New needs besides the loaded config.
type Options struct {
	Items     []card.Card
	State     state.Interface // nil disables persistence
	CellWidth int             // pixels per column; 0 uses the default
	Logger    *slog.Logger
}

// New builds the page from configuration. Invalid carousel settings never
// fail construction: they are reported as notifications once the program runs.
func New(cfg *config.Config, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		StateMgr: opts.State,
		remember: cfg.Remember() && opts.State != nil,
		resolver: keymap.Default(),
		logger:   logger,
		renderer: card.NewRenderer(cfg.GetCardWidth()),
	}

	for _, cc := range cfg.GetCarousels() {
		ccfg, err := toCarouselConfig(cc, cfg.GetScaleFactor())
		if err != nil {
			msg := errmsg.FormatWith(errmsg.OpIntervalParse, cc.Title, err)
			m.startup = append(m.startup, msg)
			logger.Warn("autoplay disabled", "carousel", cc.Title, "error", err)
		}

		c := carousel.New[card.Card](ccfg, m.renderer)
		c.SetCellWidth(opts.CellWidth)
		// Measuring waits for the first resize; Init issues it.
		_ = c.SetItems(opts.Items)
		m.Sections = append(m.Sections, Section{Title: cc.Title, Carousel: c})
	}

	m.restoreSession()
	m.applyFocus()
	return m
}

// toCarouselConfig converts a config section. An unparsable interval, or
// autoplay without one, turns autoplay off and is returned as an error.
func toCarouselConfig(cc config.CarouselConfig, scale float64) (carousel.Config, error) {
	cfg := carousel.Config{
		Spacing:      cc.GetSpacing(),
		BatchScroll:  cc.BatchScroll,
		AutoPlay:     cc.AutoPlay,
		HideControls: cc.HideControls,
		Pagination:   cc.Pagination,
		ScaleOnHover: cc.ScaleOnHover,
		ScaleFactor:  scale,
	}
	interval, err := cc.GetInterval()
	if err == nil && cc.AutoPlay && interval == 0 {
		err = fmt.Errorf("%w: missing", config.ErrInvalidInterval)
	}
	if err != nil {
		cfg.AutoPlay = false
		return cfg.Normalize(), err
	}
	cfg.Interval = interval
	return cfg.Normalize(), nil
}

// Init starts every carousel and shows notifications collected during New.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Sections)+len(m.startup)+2)
	for i := range m.Sections {
		cmds = append(cmds, m.Sections[i].Carousel.Init())
	}
	for _, msg := range m.startup {
		cmds = append(cmds, notifyCmd(msg))
	}
	cmds = append(cmds, WatchStderr(stderr.Lines()), m.watchState())
	return tea.Batch(cmds...)
}

// Close tears down every carousel's autoplay and writes the session.
func (m *Model) Close() {
	for i := range m.Sections {
		m.Sections[i].Carousel.Close()
	}
	m.saveSession()
}

// Focused returns the focused section, or nil when there are none.
func (m *Model) Focused() *Section {
	if m.Focus < 0 || m.Focus >= len(m.Sections) {
		return nil
	}
	return &m.Sections[m.Focus]
}

// SetFocus moves focus to section i, wrapping around.
func (m *Model) SetFocus(i int) {
	n := len(m.Sections)
	if n == 0 {
		return
	}
	m.Focus = ((i % n) + n) % n
	m.applyFocus()
}

func (m *Model) applyFocus() {
	for i := range m.Sections {
		m.Sections[i].Carousel.SetFocused(i == m.Focus)
	}
}

// Autoplay interval bounds for the faster/slower keys.
const (
	DefaultInterval = time.Second
	MinInterval     = 250 * time.Millisecond
	MaxInterval     = 16 * time.Second
)
