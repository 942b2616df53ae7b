// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and replaces non-breaking spaces with regular spaces.
// This keeps user-supplied deck text from breaking the terminal layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			// invalid byte
		case r != '\t' && unicode.IsControl(r):
			// control character
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b == 0x7f || b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && (s[i+1] == 0xa0 || s[i+1] >= 0x80 && s[i+1] <= 0x9f) {
			return true
		}
		if b >= 0xf5 || b == 0xc0 || b == 0xc1 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if truncated.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Wrap breaks text into at most maxLines lines of at most width columns,
// breaking on spaces. Text that does not fit ends the last line with an ellipsis.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}

	words := strings.Fields(Sanitize(s))
	var lines []string
	cur := ""
	for i, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		candidate := cur + " " + w
		if runewidth.StringWidth(candidate) <= width {
			cur = candidate
			continue
		}
		if len(lines) == maxLines-1 {
			rest := strings.Join(words[i:], " ")
			return append(lines, runewidth.Truncate(cur+" "+rest, width, ellipsis))
		}
		lines = append(lines, runewidth.Truncate(cur, width, ellipsis))
		cur = w
	}
	if cur != "" {
		lines = append(lines, runewidth.Truncate(cur, width, ellipsis))
	}
	return lines
}
