// Package cursor provides the active-index state of a carousel.
package cursor

// Cursor holds the active item index of a carousel.
// The item count is passed to methods rather than stored,
// since the caller may replace the items at any time.
//
// With zero items every transition is a no-op and the index stays 0.
type Cursor struct {
	pos int
}

// New creates a Cursor at index 0.
func New() Cursor {
	return Cursor{}
}

// Pos returns the active index.
func (c Cursor) Pos() int {
	return c.pos
}

// Next advances to the following item, wrapping from the last to the first.
func (c *Cursor) Next(listLen int) {
	if listLen <= 0 {
		return
	}
	c.pos = (c.pos + 1) % listLen
}

// Prev moves to the preceding item, wrapping from the first to the last.
func (c *Cursor) Prev(listLen int) {
	if listLen <= 0 {
		return
	}
	c.pos = (c.pos - 1 + listLen) % listLen
}

// Tick is the autoplay transition. It behaves exactly like Next.
func (c *Cursor) Tick(listLen int) {
	c.Next(listLen)
}

// Jump sets the active index, clamping it into [0, listLen-1].
// If listLen is 0, this is a no-op.
func (c *Cursor) Jump(pos, listLen int) {
	if listLen <= 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
}

// JumpStart moves to the first item.
func (c *Cursor) JumpStart(listLen int) {
	c.Jump(0, listLen)
}

// JumpEnd moves to the last item.
func (c *Cursor) JumpEnd(listLen int) {
	c.Jump(listLen-1, listLen)
}

// ClampToBounds ensures the index is valid for the given length.
// Useful when the item list is replaced by a shorter one.
// Returns true if the index was adjusted.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	if listLen <= 0 {
		c.pos = 0
	} else {
		c.pos = clamp(c.pos, listLen-1)
	}
	return c.pos != old
}

// Reset moves back to index 0.
func (c *Cursor) Reset() {
	c.pos = 0
}

// HandleKey handles carousel navigation keys and returns true if the key was handled.
// Supported keys: h/left, l/right, g/home, G/end and 1-9 (jump to that item).
func (c *Cursor) HandleKey(key string, listLen int) bool {
	switch key {
	case "h", "left":
		c.Prev(listLen)
		return true
	case "l", "right":
		c.Next(listLen)
		return true
	case "g", "home":
		c.JumpStart(listLen)
		return true
	case "G", "end":
		c.JumpEnd(listLen)
		return true
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		c.Jump(int(key[0]-'1'), listLen)
		return true
	}
	return false
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
