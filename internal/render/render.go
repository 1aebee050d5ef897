// Package render formats a retrieved plan for the channels the bot
// and CLI speak: ANSI plain text, JSON and Telegram Markdown.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"mensa-ukon/internal/icon"
	"mensa-ukon/internal/plan"
)

// SortedRecords returns the day's meals sorted by the canteen's
// explicit display order. Categories without a rank keep their
// document order and sort after the ranked ones.
func SortedRecords(p plan.Plan) []plan.MealRecord {
	if p.Meals == nil {
		return nil
	}
	records := p.Meals.Records()
	order := p.Canteen.Order
	if len(order) == 0 {
		return records
	}
	rank := func(key string) int {
		if r, ok := order[key]; ok {
			return r
		}
		return len(order)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return rank(records[i].Key) < rank(records[j].Key)
	})
	return records
}

func iconSuffix(icons []icon.Icon) string {
	if len(icons) == 0 {
		return ""
	}
	parts := make([]string, len(icons))
	for i, ic := range icons {
		parts[i] = ic.Emoji()
	}
	return " " + strings.Join(parts, " ")
}

// Plain renders the plan for terminal output.
func Plain(p plan.Plan, date time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\033[1m# %s\033[0m %s\n\n", p.Canteen.Name, date.Format("2006-01-02"))
	records := SortedRecords(p)
	if len(records) == 0 {
		sb.WriteString("No meals found.\n")
		return sb.String()
	}
	for _, rec := range records {
		fmt.Fprintf(&sb, "\033[1m%s%s:\033[0m %s\n", rec.Category, iconSuffix(rec.Icons), rec.Description)
	}
	return sb.String()
}

type jsonMeal struct {
	Key         string   `json:"key"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Icons       []string `json:"icons,omitempty"`
}

type jsonPlan struct {
	Canteen string     `json:"canteen"`
	Date    string     `json:"date"`
	Found   bool       `json:"found"`
	Meals   []jsonMeal `json:"meals"`
}

// JSON renders the plan as an indented JSON document.
func JSON(p plan.Plan, date time.Time) (string, error) {
	out := jsonPlan{
		Canteen: p.Canteen.Shortcut,
		Date:    date.Format("2006-01-02"),
		Found:   p.Found(),
		Meals:   []jsonMeal{},
	}
	for _, rec := range SortedRecords(p) {
		m := jsonMeal{Key: rec.Key, Category: rec.Category, Description: rec.Description}
		for _, ic := range rec.Icons {
			m.Icons = append(m.Icons, string(ic))
		}
		out.Meals = append(out.Meals, m)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}
	return string(data), nil
}

// Markdown renders the plan as a Telegram Markdown message, headed by
// a relative date ("Heute", "Morgen") when it applies.
func Markdown(p plan.Plan, date, today time.Time, lang plan.Language) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🍴 %s – 🕛 *%s*\n\n", p.Canteen.Name, RelativeDate(date, today, lang))

	records := SortedRecords(p)
	if len(records) == 0 {
		if lang == plan.EN {
			fmt.Fprintf(&sb, "No meals found for %s 😭\n", LongDate(date, lang))
		} else {
			fmt.Fprintf(&sb, "Keine Speisen gefunden für %s 😭\n", LongDate(date, lang))
		}
		return sb.String()
	}
	for _, rec := range records {
		fmt.Fprintf(&sb, "*%s%s:* %s\n", rec.Category, iconSuffix(rec.Icons), rec.Description)
	}
	return sb.String()
}

var monthsDE = [...]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember"}
var weekdaysDE = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch",
	"Donnerstag", "Freitag", "Samstag"}

// LongDate formats a full localized date, e.g. "Montag, 13. August
// 2018".
func LongDate(date time.Time, lang plan.Language) string {
	if lang == plan.EN {
		return date.Format("Monday, 2 January 2006")
	}
	return fmt.Sprintf("%s, %d. %s %d",
		weekdaysDE[date.Weekday()], date.Day(), monthsDE[date.Month()-1], date.Year())
}

// RelativeDate words the date relative to today where possible.
func RelativeDate(date, today time.Time, lang plan.Language) string {
	switch {
	case sameDay(date, today):
		if lang == plan.EN {
			return "Today"
		}
		return "Heute"
	case sameDay(date, today.AddDate(0, 0, 1)):
		if lang == plan.EN {
			return "Tomorrow"
		}
		return "Morgen"
	}
	return LongDate(date, lang)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
