// Package layout provides pure functions for carousel dimension calculations.
package layout

import "math"

// PaddingUnits is the number of spacing units reserved for edge padding
// across the whole container (half on each side).
const PaddingUnits = 4

// GapUnits is the number of spacing units that follow every item.
// A single spacing knob drives both PaddingUnits and GapUnits.
const GapUnits = 4

// DefaultCellWidth is the pixel width of a terminal column when the
// terminal does not report its pixel size.
const DefaultCellWidth = 8

// HeaderHeight is the height of the header bar.
const HeaderHeight = 1

// StatusHeight is the height of the status line.
const StatusHeight = 1

// TitleHeight is the height of a carousel section title.
const TitleHeight = 1

// Metrics holds the measured widths a carousel lays out against.
// Both are zero until the first measurement arrives.
type Metrics struct {
	ContainerWidth float64
	ItemWidth      float64
}

// Measured reports whether both widths have been measured.
func (m Metrics) Measured() bool {
	return m.ContainerWidth > 0 && m.ItemWidth > 0
}

// Gap returns the space that follows each item.
func Gap(spacing float64) float64 {
	return max(spacing, 0) * GapUnits
}

// Padding returns the total edge padding of the container.
func Padding(spacing float64) float64 {
	return max(spacing, 0) * PaddingUnits
}

// UnitWidth returns the width one item occupies in the row, gap included.
func UnitWidth(itemWidth, spacing float64) float64 {
	return itemWidth + Gap(spacing)
}

// ItemsInView returns how many items fit in the container.
// The result is never below 1, so callers can divide by it.
func ItemsInView(m Metrics, spacing float64) int {
	unit := UnitWidth(m.ItemWidth, spacing)
	if unit <= 0 || m.ContainerWidth <= 0 {
		return 1
	}
	n := math.Floor((m.ContainerWidth - Padding(spacing)) / unit)
	if n < 1 || math.IsNaN(n) {
		return 1
	}
	return int(n)
}

// ToPixels converts a column count to pixels.
func ToPixels(cols, cellWidth int) float64 {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return float64(cols * cellWidth)
}

// ToColumns converts pixels to the nearest column count.
func ToColumns(px float64, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return int(math.Round(px / float64(cellWidth)))
}

// FitColumns returns the whole columns that fit inside px.
func FitColumns(px float64, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return max(int(math.Floor(px/float64(cellWidth))), 0)
}

// SectionHeight returns the rows a carousel section needs: its title, the
// item row, and one row each for controls and pagination when shown.
func SectionHeight(itemHeight int, controls, pagination bool) int {
	h := TitleHeight + itemHeight
	if controls {
		h++
	}
	if pagination {
		h++
	}
	return h
}

// ContentHeight returns the rows left for carousels after header and status.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-HeaderHeight-StatusHeight, 0)
}
