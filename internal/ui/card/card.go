// Package card renders deck items as bordered cards for a carousel.
package card

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/ui/carousel"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// DefaultWidth is the outer width of a card in columns.
const DefaultWidth = 30

// DefaultAction is the label of the card button when none is set.
const DefaultAction = "View Info"

const (
	descriptionLines = 2
	borderWidth      = 2
	paddingWidth     = 2
	accentCount      = 8
)

// Card is one carousel item.
type Card struct {
	Title       string
	Description string
	Action      string
	Updated     time.Time
}

// Renderer draws cards at a fixed width. It is safe for concurrent use.
type Renderer struct {
	width   int
	now     func() time.Time
	accents []lipgloss.Color
}

// NewRenderer creates a renderer for cards of the given outer width.
func NewRenderer(width int) *Renderer {
	if width < borderWidth+paddingWidth+1 {
		width = DefaultWidth
	}
	t := styles.T()
	return &Renderer{
		width:   width,
		now:     time.Now,
		accents: styles.Blend(accentCount, t.Primary, t.Secondary),
	}
}

// Width returns the outer width of rendered cards.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the outer height of rendered cards.
func (r *Renderer) Height() int {
	return 1 + descriptionLines + 1 + 1 + borderWidth
}

// Render draws a card. Emphasized placements get a thick accent border;
// the row shift is applied by the carousel, not here.
func (r *Renderer) Render(c Card, p carousel.Placement) string {
	s := styles.T().S()
	inner := r.width - borderWidth - paddingWidth

	titleStyle := s.Title
	if p.Active {
		titleStyle = s.Active
	}

	lines := make([]string, 0, r.Height()-borderWidth)
	lines = append(lines, titleStyle.Render(render.TruncateAndPad(c.Title, inner)))

	desc := render.Wrap(c.Description, inner, descriptionLines)
	for i := range descriptionLines {
		line := ""
		if i < len(desc) {
			line = desc[i]
		}
		lines = append(lines, s.Muted.Render(render.Pad(line, inner)))
	}

	meta := ""
	if !c.Updated.IsZero() {
		meta = "updated " + humanize.RelTime(c.Updated, r.now(), "ago", "from now")
	}
	lines = append(lines, s.Subtle.Render(render.TruncateAndPad(meta, inner)))

	action := c.Action
	if action == "" {
		action = DefaultAction
	}
	lines = append(lines, s.Control.Render(centered(render.Truncate(action, inner), inner)))

	accent := r.accents[p.Index%len(r.accents)]
	return styles.CardBorder(p.Emphasized(), accent).
		Padding(0, paddingWidth/2).
		Render(strings.Join(lines, "\n"))
}

func centered(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
