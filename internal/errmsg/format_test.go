//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDeckLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpDeckLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load items: file not found",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("permission denied"),
			expected: "Failed to load config: permission denied",
		},
		{
			name:     "state operation",
			op:       OpStateSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save session state: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDeckParse,
			context:  "deck.yaml",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpDeckParse,
			context:  "deck.yaml",
			err:      errors.New("card 3: missing title"),
			expected: "Failed to parse items 'deck.yaml': card 3: missing title",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpDeckParse,
			context:  "",
			err:      errors.New("card 3: missing title"),
			expected: "Failed to parse items: card 3: missing title",
		},
		{
			name:     "interval with carousel context",
			op:       OpIntervalParse,
			context:  "Automatic Scroll",
			err:      errors.New(`invalid interval: "soon"`),
			expected: `Failed to parse autoplay interval 'Automatic Scroll': invalid interval: "soon"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad, OpLogOpen, OpInitialize,
		OpDeckLoad, OpDeckParse,
		OpStateOpen, OpStateSave, OpStateRestore,
		OpIntervalParse,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
