package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun   = regexp.MustCompile(`[\s\p{Z}\x{feff}]+`)
	spaceBeforePunc = regexp.MustCompile(`\s+([.,!?;:])`)
)

// cleanText collapses all whitespace runs to a single space and removes
// spaces in front of punctuation.
func cleanText(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = spaceBeforePunc.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// collapse trims s and folds internal whitespace, used for short metadata values.
func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
