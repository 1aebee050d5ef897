// Package icon maps the short meal-type codes found in the canteen
// plans to semantic icon tags. Codes appear either as CSS class tokens
// on marker elements or, in older documents, as parenthesized shorthand
// inside the description text.
package icon

import (
	"regexp"
	"strings"
)

// Icon is a semantic marker for a meal, independent of how it is
// displayed.
type Icon string

const (
	Beef       Icon = "beef"
	Pork       Icon = "pork"
	Fish       Icon = "fish"
	Poultry    Icon = "poultry"
	Vegan      Icon = "vegan"
	Vegetarian Icon = "vegetarian"
	Lamb       Icon = "lamb"
	Game       Icon = "game"
	Starred    Icon = "starred"
)

// Emoji returns the display character used in chat messages.
func (i Icon) Emoji() string {
	switch i {
	case Beef:
		return "\U0001F42E" // cow
	case Pork:
		return "\U0001F437" // pig
	case Fish:
		return "\U0001F41F"
	case Poultry:
		return "\U0001F414" // chicken
	case Vegan:
		return "\U0001F331" // seedling
	case Vegetarian:
		return "\U0001F9C0" // cheese
	case Lamb:
		return "\U0001F411" // sheep
	case Game:
		return "\U0001F98C" // deer
	case Starred:
		return "⭐"
	}
	return ""
}

// matchers are evaluated in order and the first full match wins. The
// order is deliberate: "Vegan" must be tested before the "Veg" prefix,
// and the single-letter meat codes must not swallow the multi-letter
// ones.
var matchers = []struct {
	icon Icon
	re   *regexp.Regexp
}{
	{Beef, regexp.MustCompile(`^[RCKB]$`)},
	{Pork, regexp.MustCompile(`^(?:Sch|P)$`)},
	{Fish, regexp.MustCompile(`^F$`)},
	{Poultry, regexp.MustCompile(`^(?:G|Po)$`)},
	{Vegan, regexp.MustCompile(`^Vegan$`)},
	{Vegetarian, regexp.MustCompile(`^Veg$`)},
	{Lamb, regexp.MustCompile(`^L$`)},
	{Game, regexp.MustCompile(`^W$`)},
	{Starred, regexp.MustCompile(`^St$`)},
}

// Classify maps a single code to its icon. The second return value is
// false when no matcher recognizes the code.
func Classify(code string) (Icon, bool) {
	code = strings.TrimSpace(code)
	for _, m := range matchers {
		if m.re.MatchString(code) {
			return m.icon, true
		}
	}
	return "", false
}

var inParens = regexp.MustCompile(`\(([^)]*)\)`)

// ClassifyGroup replaces recognized codes inside every parenthesized
// group of text with their emoji, keeping the parentheses and
// comma-separation intact. Unrecognized codes are passed through
// verbatim, so "(C, Foo)" becomes "(🐮, Foo)".
func ClassifyGroup(text string) string {
	return inParens.ReplaceAllStringFunc(text, func(group string) string {
		inner := group[1 : len(group)-1]
		parts := strings.Split(inner, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if ic, ok := Classify(p); ok {
				out = append(out, ic.Emoji())
			} else {
				out = append(out, strings.TrimSpace(p))
			}
		}
		return "(" + strings.Join(out, ", ") + ")"
	})
}

// ExtractInline pulls icons out of the older inline-shorthand format.
// A parenthesized group whose codes are all recognized is removed from
// the text and its icons are collected in order; groups with any
// unrecognized content are left untouched.
func ExtractInline(text string) ([]Icon, string) {
	var icons []Icon
	cleaned := inParens.ReplaceAllStringFunc(text, func(group string) string {
		inner := group[1 : len(group)-1]
		parts := strings.Split(inner, ",")
		matched := make([]Icon, 0, len(parts))
		for _, p := range parts {
			ic, ok := Classify(p)
			if !ok {
				return group
			}
			matched = append(matched, ic)
		}
		icons = append(icons, matched...)
		return ""
	})
	return icons, cleaned
}
