//go:build unix

package layout

import (
	"os"

	"golang.org/x/sys/unix"
)

// DetectCellWidth returns the terminal column width in pixels
// by querying TIOCGWINSZ. Falls back to DefaultCellWidth if unavailable.
func DetectCellWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Xpixel == 0 {
		return DefaultCellWidth
	}
	return max(int(ws.Xpixel)/int(ws.Col), 1)
}
