// Package utils holds small shared helpers
package utils

import (
	"strings"
	"unicode"
)

// MaxLogStringLength defines the maximum length for user-provided strings in logs
const MaxLogStringLength = 200

// SanitizeLogString makes a client-controlled string safe to log: it caps
// the length, strips control characters (no log-line injection via CRLF)
// and doubles percent signs so the value can pass through format strings
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > MaxLogStringLength {
		input = input[:MaxLogStringLength] + "... (truncated)"
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	return strings.ReplaceAll(sanitized, "%", "%%")
}
