package shared

import (
	"errors"
	"strings"
	"unicode"
)

const MaxExcerptLen = 256

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// NormalizeHandle makes account handles comparable: no leading @, lower case.
func NormalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	return strings.ToLower(handle)
}

func ValidateHandle(handle string) error {
	if len(handle) == 0 {
		return errors.New("account handle cannot be empty")
	}
	for _, c := range handle {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
			continue
		}
		return errors.New("account handle may only contain letters, digits and underscores")
	}
	return nil
}
