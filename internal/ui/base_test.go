package ui

import "testing"

func TestBaseSize(t *testing.T) {
	var b Base
	b.SetSize(80, 12)
	if w, h := b.Size(); w != 80 || h != 12 {
		t.Errorf("Size() = (%d, %d), want (80, 12)", w, h)
	}

	b.SetSize(-3, -1)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("negative size not clamped: (%d, %d)", b.Width(), b.Height())
	}
}

func TestBaseFocus(t *testing.T) {
	var b Base
	if b.IsFocused() {
		t.Error("zero Base should not be focused")
	}
	b.SetFocused(true)
	if !b.IsFocused() {
		t.Error("SetFocused(true) not applied")
	}
}

func TestBaseContains(t *testing.T) {
	var b Base
	b.SetSize(10, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 2, true},
		{10, 0, false},
		{0, 3, false},
		{-1, 1, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
