package utils

import (
	"strconv"
	"strings"
)

// IsKeyString reports whether s is a non-empty run of keypad digits.
func IsKeyString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsSkippableLine reports whether a word-list line carries no word:
// blank lines and '#' comments.
func IsSkippableLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// FormatWithCommas formats an integer with comma separators.
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if len(str) <= 3 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
