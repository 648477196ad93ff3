package util

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended by Truncate.
const Ellipsis = "…"

// Truncate shortens s to at most limit runes, ending with an ellipsis when it was cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return strings.TrimRight(string(runes[:limit-1]), " \t\n") + Ellipsis
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FirstNonEmpty returns the first value that is not blank once trimmed, or fallback.
func FirstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}

	return fallback
}
