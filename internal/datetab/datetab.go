// Package datetab locates the tab of a rendered two-week meal plan
// that corresponds to a requested calendar date. Tabs are labeled with
// a year-less, locale-specific short weekday plus day.month string
// such as "Mo. 13.08." (German) or "Mon. 13.08." (English).
package datetab

import (
	"fmt"
	"strings"
	"time"

	"mensa-ukon/internal/plan"
)

var weekdaysDE = [...]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."}
var weekdaysEN = [...]string{"Sun.", "Mon.", "Tue.", "Wed.", "Thu.", "Fri.", "Sat."}

// Label renders the tab label for a date in the given language.
func Label(date time.Time, lang plan.Language) string {
	var wd string
	switch lang {
	case plan.EN:
		wd = weekdaysEN[date.Weekday()]
	default:
		wd = weekdaysDE[date.Weekday()]
	}
	return fmt.Sprintf("%s %02d.%02d.", wd, date.Day(), int(date.Month()))
}

// Resolve scans labels for the tab matching target and returns its
// 0-based index. The requested language is tried first, then the other
// supported one, because real documents have been observed carrying
// labels in either locale regardless of the language requested. The
// labels never encode a year, so only dates within the published
// window can be resolved; anything else reports false.
func Resolve(labels []string, target time.Time, lang plan.Language) (int, bool) {
	for _, l := range localeOrder(lang) {
		want := Label(target, l)
		for i, label := range labels {
			if normalizeLabel(label) == want {
				return i, true
			}
		}
	}
	return 0, false
}

func localeOrder(lang plan.Language) []plan.Language {
	order := []plan.Language{lang}
	for _, l := range plan.Languages {
		if l != lang {
			order = append(order, l)
		}
	}
	return order
}

// normalizeLabel collapses the whitespace variation seen in rendered
// tab labels before comparing.
func normalizeLabel(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
