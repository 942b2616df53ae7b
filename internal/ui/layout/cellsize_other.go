//go:build !unix

package layout

// DetectCellWidth returns DefaultCellWidth on platforms without TIOCGWINSZ.
func DetectCellWidth() int {
	return DefaultCellWidth
}
