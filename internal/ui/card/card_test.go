package card

import (
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/carousel/internal/ui/carousel"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

func fixedRenderer(width int) *Renderer {
	r := NewRenderer(width)
	r.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestRender_Dimensions(t *testing.T) {
	r := fixedRenderer(DefaultWidth)
	c := Card{Title: "Mountain Lake", Description: "A quiet lake under the northern sky, far from any road."}

	for _, p := range []carousel.Placement{
		{Index: 0, Scale: 1},
		{Index: 3, Scale: 1.1, Active: true},
	} {
		lines := strings.Split(r.Render(c, p), "\n")
		if len(lines) != r.Height() {
			t.Fatalf("scale %v: %d lines, want %d", p.Scale, len(lines), r.Height())
		}
		for _, line := range lines {
			if w := testutil.MeasureWidth(line); w != DefaultWidth {
				t.Errorf("scale %v: line %q width = %d, want %d", p.Scale, testutil.StripANSI(line), w, DefaultWidth)
			}
		}
	}
}

func TestRender_Content(t *testing.T) {
	r := fixedRenderer(DefaultWidth)
	c := Card{
		Title:       "Desert Road",
		Description: "Sand and sun",
		Updated:     time.Date(2024, 5, 7, 12, 0, 0, 0, time.UTC),
	}

	out := testutil.StripANSI(r.Render(c, carousel.Placement{Scale: 1}))
	for _, want := range []string{"Desert Road", "Sand and sun", "updated 3 days ago", DefaultAction} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}

	c.Action = "Open"
	out = testutil.StripANSI(r.Render(c, carousel.Placement{Scale: 1}))
	if !strings.Contains(out, "Open") || strings.Contains(out, DefaultAction) {
		t.Errorf("custom action not rendered:\n%s", out)
	}
}

func TestRender_EmphasisChangesBorder(t *testing.T) {
	r := fixedRenderer(DefaultWidth)
	c := Card{Title: "Forest"}

	tests := []struct {
		name  string
		scale float64
		want  string
	}{
		{"rounded border when not emphasized", 1, "╭"},
		{"thick border when emphasized", 1.1, "┏"},
	}
	for _, tt := range tests {
		out := testutil.StripANSI(r.Render(c, carousel.Placement{Scale: tt.scale}))
		if !strings.HasPrefix(out, tt.want) {
			t.Errorf("%s: card starts with %q", tt.name, []rune(out)[0])
		}
	}
}

func TestRender_LongTitleTruncated(t *testing.T) {
	r := fixedRenderer(20)
	out := testutil.StripANSI(r.Render(Card{Title: strings.Repeat("x", 40)}, carousel.Placement{Scale: 1}))
	if !strings.Contains(out, "...") {
		t.Error("long title should be truncated with an ellipsis")
	}
	for _, line := range strings.Split(out, "\n") {
		if w := testutil.MeasureWidth(line); w != 20 {
			t.Errorf("line %q width = %d, want 20", line, w)
		}
	}
}

func TestNewRenderer_MinimumWidth(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{2, DefaultWidth},
		{24, 24},
	}
	for _, tt := range tests {
		if got := NewRenderer(tt.width).Width(); got != tt.want {
			t.Errorf("NewRenderer(%d).Width() = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 3, "abcdef"},
	}
	for _, tt := range tests {
		if got := centered(tt.s, tt.width); got != tt.want {
			t.Errorf("centered(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
