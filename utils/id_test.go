package utils

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^lesson_\d{13,}_[0-9a-z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID("lesson")
		if !pattern.MatchString(id) {
			t.Fatalf("id=%q does not match the expected shape", id)
		}
		seen[id] = true
	}
	if len(seen) < 90 {
		t.Fatalf("only %d distinct ids in 100 draws", len(seen))
	}
}

func TestGenerateIDPrefixes(t *testing.T) {
	for _, prefix := range []string{"lesson", "quiz", "attempt", "activity"} {
		if id := GenerateID(prefix); !strings.HasPrefix(id, prefix+"_") {
			t.Fatalf("id=%q missing prefix %q", id, prefix)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 150); got != "short" {
		t.Fatalf("got %q, want untouched input", got)
	}
	long := strings.Repeat("a", 200)
	got := Truncate(long, 150)
	if len(got) != 153 || !strings.HasSuffix(got, "...") {
		t.Fatalf("got len=%d, want 150 + ellipsis", len(got))
	}
	// Rune-safe: multibyte input must not be cut mid-character.
	multibyte := strings.Repeat("é", 10)
	if got := Truncate(multibyte, 4); got != "éééé..." {
		t.Fatalf("got %q, want 4 runes + ellipsis", got)
	}
}
