package strings

import (
	"strings"
)

// MaskedLen is the number of mask characters appended after the visible
// prefix, whatever the length of the hidden part.
const MaskedLen = 8

// MinRevealLen is the shortest value whose prefix is shown. Shorter values
// are masked entirely.
const MinRevealLen = 9

// MaskSecret hides a secret for display, keeping the first visible runes
// of values at least MinRevealLen long. The mask has a fixed length so it
// does not leak the length of the secret. An empty string stays empty.
func MaskSecret(s string, visible int) string {
	if s == "" {
		return ""
	}
	if visible < 0 {
		visible = 0
	}

	runes := []rune(s)
	if len(runes) < MinRevealLen {
		return strings.Repeat("*", len(runes))
	}
	if visible > len(runes)/2 {
		visible = len(runes) / 2
	}
	return string(runes[:visible]) + strings.Repeat("*", MaskedLen)
}
