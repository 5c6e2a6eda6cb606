// Package parsing provides text, date, and location normalization helpers
// for raw values scraped out of a profile page.
package parsing

import (
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[\x00-\x1f\x7f\x{00ad}\x{200b}-\x{200f}\x{feff}]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// CleanText strips control characters, collapses whitespace runs to a single
// space, and trims the result. Applying it twice yields the same output.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := controlChars.ReplaceAllString(text, " ")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// CleanOptionalText applies CleanText to an optional value. A nil input or a
// value that cleans down to the empty string yields nil.
func CleanOptionalText(text *string) *string {
	if text == nil {
		return nil
	}
	cleaned := CleanText(*text)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
