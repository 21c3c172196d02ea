package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the fallback name for unrecognized enum values.
const UnknownStr = "unknown"

// IsBlank returns true if s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
