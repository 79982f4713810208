// utils/id.go
package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID builds ids of the form <prefix>_<millisecond-timestamp>_<9-char
// base36 suffix>, e.g. "lesson_1735689600000_k3f9x20qa". Prefixes in use:
// lesson, quiz, attempt, activity.
func GenerateID(prefix string) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), b.String())
}

// Truncate shortens s to max runes, appending an ellipsis when it was cut.
// Used to derive lesson descriptions from the body.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
