// Package slug turns free-text search queries into canonical cache keys.
package slug

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The whitespace set is the Unicode-aware \s class used by JavaScript
// slugifiers. RE2's \s is ASCII-only.
var (
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+`)
	nonWord       = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
	edgeHyphens   = regexp.MustCompile(`^-+|-+$`)
)

// Normalize lowercases text, turns whitespace runs into single hyphens,
// drops everything that is not a word character or hyphen, collapses
// repeated hyphens and trims hyphens from both ends.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	out := cases.Lower(language.Und).String(text)
	out = whitespaceRun.ReplaceAllString(out, "-")
	out = nonWord.ReplaceAllString(out, "")
	out = hyphenRun.ReplaceAllString(out, "-")
	return edgeHyphens.ReplaceAllString(out, "")
}
