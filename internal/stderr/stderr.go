//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe while the TUI owns
// the terminal. Anything written there, by this process or a dependency,
// would otherwise land in the middle of the alternate screen.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"
)

const bufferSize = 100

var (
	mu         sync.Mutex
	lines      chan string
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
)

// Start begins capturing stderr. If capture cannot be set up the program can
// continue; output then goes to the original stderr.
func Start() error {
	mu.Lock()
	defer mu.Unlock()

	if lines != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead, pipeWrite = r, w
	out := make(chan string, bufferSize)
	lines = out

	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case out <- line:
			default:
				// full; drop rather than block the writer
			}
		}
	}()

	return nil
}

// Lines returns captured lines, or nil when capture is not running.
// The channel is closed after Stop.
func Lines() <-chan string {
	mu.Lock()
	defer mu.Unlock()
	return lines
}

// WriteOriginal writes to the terminal's stderr, bypassing capture.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()

	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original stderr.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if lines == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	pipeWrite.Close()
	pipeRead.Close()
	lines = nil
}
