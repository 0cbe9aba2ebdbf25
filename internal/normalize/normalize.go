package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	citationPattern = regexp.MustCompile(`\[\s*[^\]]+\]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Clean turns a raw text fragment scraped from a wiki page into display text:
// it strips citation-style annotations like "[1]" or "[note 2]", replaces
// non-breaking spaces with ordinary spaces, collapses whitespace runs to a
// single space, and trims the result. Empty input yields an empty string.
// Clean is idempotent.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = citationPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
