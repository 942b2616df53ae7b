//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 4},
		{"autoplay context", "autoplay", true, 3},
		{"carousel context", "carousel", true, 5},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestContextsCoverAllBindings(t *testing.T) {
	total := 0
	for _, ctx := range Contexts {
		total += len(ByContext(ctx))
	}
	if total != len(Bindings) {
		t.Errorf("Contexts cover %d bindings, want %d", total, len(Bindings))
	}
}

func TestNoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestBindingsHaveDescriptions(t *testing.T) {
	for _, b := range Bindings {
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
	}
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"single", []string{"?"}, "?"},
		{"pair", []string{"q", "ctrl+c"}, "q/ctrl+c"},
		{"space", []string{"a", " "}, "a/space"},
		{"digits", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "1-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyLabel(tt.keys); got != tt.want {
				t.Errorf("KeyLabel(%v) = %q, want %q", tt.keys, got, tt.want)
			}
		})
	}
}
