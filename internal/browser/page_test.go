package browser

import (
	"testing"
	"unicode/utf8"
)

func TestResolveKey(t *testing.T) {
	t.Run("named keys resolve to a single key rune", func(t *testing.T) {
		names := []string{
			"Enter", "Tab", "Backspace", "Delete", "Escape", "Insert",
			"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
			"Home", "End", "PageUp", "PageDown",
		}
		for _, name := range names {
			resolved := resolveKey(name)
			if resolved == name {
				t.Errorf("resolveKey(%q) returned the name unresolved", name)
				continue
			}
			if n := utf8.RuneCountInString(resolved); n != 1 {
				t.Errorf("resolveKey(%q) = %q, want a single rune, got %d", name, resolved, n)
			}
		}
	})

	t.Run("plain characters pass through unchanged", func(t *testing.T) {
		for _, key := range []string{"a", "Z", "5", " ", "ä"} {
			if got := resolveKey(key); got != key {
				t.Errorf("resolveKey(%q) = %q, want unchanged", key, got)
			}
		}
	})

	t.Run("every mapped name has a distinct rune", func(t *testing.T) {
		seen := make(map[string]string, len(namedKeys))
		for name, r := range namedKeys {
			if other, dup := seen[r]; dup {
				t.Errorf("key names %q and %q map to the same rune %q", name, other, r)
			}
			seen[r] = name
		}
	})
}
