//go:build windows

// Package stderr is a no-op on Windows, where the console is not shared with
// the alternate screen in the same way.
package stderr

import "os"

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Lines returns nil on Windows.
func Lines() <-chan string {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
