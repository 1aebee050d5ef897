package plan

import (
	"strings"

	"mensa-ukon/internal/canteen"
	"mensa-ukon/internal/icon"
)

// Language selects which localized endpoint and date formats are used.
type Language string

const (
	DE Language = "de"
	EN Language = "en"
)

// Languages lists all supported languages.
var Languages = []Language{DE, EN}

// NormalizeKey turns a category label into its lookup key: trimmed,
// lowercased, inner spaces replaced by underscores.
func NormalizeKey(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// MealRecord is one extracted meal offering.
type MealRecord struct {
	// Key is the normalized category label, unique within a DayPlan.
	Key string
	// Category is the label as it appears in the source document.
	Category string
	// Description is the cleaned meal text.
	Description string
	// Icons are the markers attached to the meal, in document order.
	Icons []icon.Icon
}

// DayPlan holds all meals of one calendar day, keyed by normalized
// category. Insertion order is preserved; setting an existing key
// replaces the record but keeps its original position, matching the
// upstream document quirk of later rows overwriting earlier ones.
type DayPlan struct {
	keys    []string
	records map[string]MealRecord
}

// NewDayPlan returns an empty DayPlan.
func NewDayPlan() *DayPlan {
	return &DayPlan{records: make(map[string]MealRecord)}
}

// Set inserts or overwrites the record under its Key.
func (d *DayPlan) Set(rec MealRecord) {
	if _, ok := d.records[rec.Key]; !ok {
		d.keys = append(d.keys, rec.Key)
	}
	d.records[rec.Key] = rec
}

// Get returns the record for a normalized category key.
func (d *DayPlan) Get(key string) (MealRecord, bool) {
	rec, ok := d.records[key]
	return rec, ok
}

// Len reports the number of meals in the day.
func (d *DayPlan) Len() int {
	return len(d.keys)
}

// Keys returns the normalized category keys in insertion order.
func (d *DayPlan) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Records returns the meal records in insertion order.
func (d *DayPlan) Records() []MealRecord {
	out := make([]MealRecord, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.records[k])
	}
	return out
}

// Plan pairs a canteen with the meals resolved for one requested date.
// Meals is nil when the date could not be resolved to a tab at all; an
// empty (non-nil) DayPlan means the day was found but offered nothing.
type Plan struct {
	Canteen canteen.Canteen
	Meals   *DayPlan
}

// Found reports whether the requested date was present in the source
// document.
func (p Plan) Found() bool {
	return p.Meals != nil
}
