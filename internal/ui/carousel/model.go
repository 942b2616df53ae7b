package carousel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/cursor"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Renderer draws one item for the given placement.
// It owns all painting; the carousel only decides scale and shift.
type Renderer[T any] interface {
	Render(item T, p Placement) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[T any] func(item T, p Placement) string

// Render calls f.
func (f RendererFunc[T]) Render(item T, p Placement) string {
	return f(item, p)
}

// Model is a carousel over items of type T.
//
// The model is owned by a single Bubble Tea program. Size changes, autoplay
// ticks and input all arrive as messages through Update, so the active index
// is never mutated concurrently.
type Model[T any] struct {
	ui.Base
	id       int
	cfg      Config
	items    []T
	renderer Renderer[T]

	cursor   cursor.Cursor
	scroll   Scroller
	autoplay Autoplay
	pager    Pagination
	styles   Styles

	metrics    layout.Metrics
	itemHeight int
	cellWidth  int
	measureSeq int
	appliedSeq int
	hovered    int
	closed     bool
}

// New creates a carousel. Call Init to take the first measurement and start autoplay.
func New[T any](cfg Config, renderer Renderer[T]) Model[T] {
	id := nextID()
	st := DefaultStyles()
	return Model[T]{
		id:        id,
		cfg:       cfg.Normalize(),
		renderer:  renderer,
		cursor:    cursor.New(),
		autoplay:  NewAutoplay(id),
		pager:     NewPagination(st.ActiveDot, st.InactiveDot),
		styles:    st,
		cellWidth: layout.DefaultCellWidth,
		hovered:   -1,
	}
}

// ID returns the identifier carried by this carousel's messages.
func (m Model[T]) ID() int {
	return m.id
}

// Init starts autoplay when configured and requests a measurement.
func (m *Model[T]) Init() tea.Cmd {
	return tea.Batch(m.measure(), m.resubscribe())
}

// Close tears down the autoplay subscription. Ticks scheduled before Close are dropped.
func (m *Model[T]) Close() {
	m.autoplay.Stop()
	m.closed = true
}

// Closed reports whether Close was called.
func (m Model[T]) Closed() bool {
	return m.closed
}

// Config returns the current configuration.
func (m Model[T]) Config() Config {
	return m.cfg
}

// SetConfig replaces the configuration, rebuilds the autoplay subscription
// with the new interval and recomputes derived values.
func (m *Model[T]) SetConfig(cfg Config) tea.Cmd {
	m.cfg = cfg.Normalize()
	m.recompute()
	return m.resubscribe()
}

// SetStyles replaces the control and pagination styles.
func (m *Model[T]) SetStyles(st Styles) {
	m.styles = st
	m.pager = NewPagination(st.ActiveDot, st.InactiveDot)
}

// SetCellWidth sets how many pixels one terminal column spans.
func (m *Model[T]) SetCellWidth(px int) {
	if px <= 0 {
		px = layout.DefaultCellWidth
	}
	m.cellWidth = px
}

// SetItems replaces the items, clamps the active index and re-measures.
func (m *Model[T]) SetItems(items []T) tea.Cmd {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	m.scroll.Reset()
	m.hovered = -1
	if len(items) == 0 {
		m.metrics.ItemWidth = 0
		m.itemHeight = 0
	}
	m.recompute()
	return m.measure()
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Active returns the active index.
func (m Model[T]) Active() int {
	return m.cursor.Pos()
}

// Selected returns the active item and true, or the zero value and false if empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// Metrics returns the last measurement.
func (m Model[T]) Metrics() layout.Metrics {
	return m.metrics
}

// ItemsInView returns how many items fit in the container.
func (m Model[T]) ItemsInView() int {
	return layout.ItemsInView(m.metrics, m.cfg.Spacing)
}

// Offset returns the current shift of the item row.
func (m Model[T]) Offset() float64 {
	if !m.metrics.Measured() {
		return 0
	}
	return m.scroll.Offset()
}

// Page returns the page of the active item.
func (m Model[T]) Page() int {
	return Page(m.cursor.Pos(), m.ItemsInView())
}

// PageCount returns the number of pages.
func (m Model[T]) PageCount() int {
	return PageCount(len(m.items), m.ItemsInView())
}

// Hovered returns the hovered index, or -1.
func (m Model[T]) Hovered() int {
	return m.hovered
}

// ClearHover forgets the hovered item, e.g. when the pointer leaves the carousel.
func (m *Model[T]) ClearHover() {
	m.hovered = -1
}

// AutoplayRunning reports whether the autoplay timer is subscribed.
func (m Model[T]) AutoplayRunning() bool {
	return m.autoplay.Running()
}

// ControlsEnabled reports whether prev/next controls are shown and usable.
func (m Model[T]) ControlsEnabled() bool {
	return !m.cfg.HideControls && len(m.items) > 0
}

// Placements returns the scale and shift of every item.
func (m Model[T]) Placements() []Placement {
	return place(placeParams{
		n:            len(m.items),
		active:       m.cursor.Pos(),
		hovered:      m.hovered,
		offset:       m.Offset(),
		scaleFactor:  m.cfg.ScaleFactor,
		scaleOnHover: m.cfg.ScaleOnHover,
		measured:     m.metrics.Measured(),
	})
}

// Indicators returns the pagination indicators, or nil when pagination is off.
func (m Model[T]) Indicators() []Indicator {
	if !m.cfg.Pagination {
		return nil
	}
	return m.pager.Indicators(len(m.items), m.cursor.Pos())
}

// Next moves to the following item.
func (m *Model[T]) Next() {
	m.cursor.Next(len(m.items))
	m.recompute()
}

// Prev moves to the preceding item.
func (m *Model[T]) Prev() {
	m.cursor.Prev(len(m.items))
	m.recompute()
}

// Jump moves to index i, clamped into range.
func (m *Model[T]) Jump(i int) {
	m.cursor.Jump(i, len(m.items))
	m.recompute()
}

// Update handles resize, measurement, autoplay and input messages.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, m.measure()

	case MeasuredMsg:
		if msg.ID != m.id || msg.seq < m.appliedSeq {
			return m, nil
		}
		m.appliedSeq = msg.seq
		m.metrics = msg.Metrics
		m.itemHeight = msg.ItemHeight
		m.recompute()

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		fired, cmd := m.autoplay.Update(msg)
		if !fired {
			return m, nil
		}
		m.cursor.Tick(len(m.items))
		m.recompute()
		return m, cmd

	case tea.KeyMsg:
		if !m.IsFocused() || len(m.items) == 0 {
			return m, nil
		}
		if m.cursor.HandleKey(msg.String(), len(m.items)) {
			m.recompute()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

// resubscribe rebuilds the autoplay timer from the current config.
func (m *Model[T]) resubscribe() tea.Cmd {
	if m.closed || !m.cfg.AutoplayActive() {
		m.autoplay.Stop()
		return nil
	}
	return m.autoplay.Start(m.cfg.Interval)
}

// measure requests a new measurement of the container and the first item.
func (m *Model[T]) measure() tea.Cmd {
	m.measureSeq++
	req := measureRequest{
		id:            m.id,
		seq:           m.measureSeq,
		containerCols: m.Width(),
		cellWidth:     m.cellWidth,
	}
	if len(m.items) > 0 && m.renderer != nil {
		item, r := m.items[0], m.renderer
		req.sample = func() string {
			return r.Render(item, Placement{Scale: 1})
		}
	}
	return measureCmd(req)
}

// recompute refreshes the derived shift after any index, layout or config change.
func (m *Model[T]) recompute() {
	if !m.metrics.Measured() {
		return
	}
	unit := layout.UnitWidth(m.metrics.ItemWidth, m.cfg.Spacing)
	m.scroll.Update(m.cursor.Pos(), m.ItemsInView(), unit, m.cfg.BatchScroll)
}
