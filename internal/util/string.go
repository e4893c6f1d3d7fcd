package util

import (
	"strings"
	"unicode/utf8"
)

// PrefixRunes returns the first maxRunes characters of s (rune-based, not
// byte-based). Korean text would be corrupted by byte slicing.
func PrefixRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// TruncateString truncates a string to maxRunes characters and appends "..."
// when anything was cut off.
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// WordCount counts characters including whitespace, matching how the
// front-end reports 글자 수 (공백 포함).
func WordCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
