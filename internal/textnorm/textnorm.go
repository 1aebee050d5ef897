package textnorm

import (
	"regexp"
	"strings"
)

// Additive markers are footnote-style parenthesized groups of digits
// and single-letter suffixes, e.g. "(1,2a,9)". A group containing a
// real word is not an additive marker and stays untouched.
var (
	parenGroup    = regexp.MustCompile(`\([^()]*\)`)
	additiveToken = regexp.MustCompile(`^\d*[a-z]?$`)
	tokenSep      = regexp.MustCompile(`[,.\s]+`)
)

var (
	whitespaceRuns = regexp.MustCompile(`\s{2,}`)
	spaceComma     = regexp.MustCompile(`\s,`)
)

// misspellings is a small table of literal fixes for typos that keep
// showing up in the upstream plans.
var misspellings = strings.NewReplacer(
	"Züricher", "Zürcher",
)

// StripAdditives removes every additive marker from text, wherever it
// occurs. Surrounding text is left as-is, so stripping can leave double
// spaces behind.
func StripAdditives(text string) string {
	return parenGroup.ReplaceAllStringFunc(text, func(group string) string {
		inner := group[1 : len(group)-1]
		for _, tok := range tokenSep.Split(inner, -1) {
			if !additiveToken.MatchString(tok) {
				return group
			}
		}
		return ""
	})
}

// NormalizeWhitespace collapses runs of two or more whitespace
// characters (including tabs) into a single space.
func NormalizeWhitespace(text string) string {
	return whitespaceRuns.ReplaceAllString(text, " ")
}

// NormalizeOrthography removes a stray space before a comma.
func NormalizeOrthography(text string) string {
	return spaceComma.ReplaceAllString(text, ",")
}

// CleanText trims the input and applies StripAdditives,
// NormalizeWhitespace and NormalizeOrthography in that order. The order
// matters: stripping additives can introduce double spaces, and
// collapsing those can leave a space before a comma.
func CleanText(text string) string {
	return NormalizeOrthography(NormalizeWhitespace(StripAdditives(strings.TrimSpace(text))))
}

// FixKnownMisspellings applies the literal replacement table.
func FixKnownMisspellings(text string) string {
	return misspellings.Replace(text)
}
