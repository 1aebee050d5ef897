// Package canteen holds the static registry of known canteens.
package canteen

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned when a requested canteen is not registered.
var ErrUnknown = errors.New("unknown canteen")

// Canteen describes one dining location. The data is immutable
// reference data loaded once at process start.
type Canteen struct {
	// Key identifies the canteen on the remote endpoint.
	Key string
	// Name is the human-readable display name.
	Name string
	// Shortcut is the short alias used in CLI flags and bot commands.
	Shortcut string
	// Order maps category keys to an explicit display rank. Categories
	// without a rank sort after the ranked ones, in document order.
	Order map[string]int
	// DaysOpen is the number of open days the plan document is
	// expected to cover. Used for consistency warnings only.
	DaysOpen int
}

// DefaultDaysOpen covers the usual two Mon-Fri weeks.
const DefaultDaysOpen = 10

var registry = []Canteen{
	{
		Key:      "mensa-giessberg",
		Name:     "Uni Konstanz",
		Shortcut: "giessberg",
		Order: map[string]int{
			"stammessen":  0,
			"wahlessen":   1,
			"vegetarisch": 2,
			"beilagen":    3,
			"eintopf":     4,
			"al_studente": 5,
		},
		DaysOpen: 12,
	},
	{Key: "mensa-htwg", Name: "HTWG", Shortcut: "htwg", DaysOpen: DefaultDaysOpen},
	{Key: "mensa-friedrichshafen", Name: "Friedrichshafen", Shortcut: "fn", DaysOpen: DefaultDaysOpen},
	{Key: "mensa-weingarten", Name: "Weingarten", Shortcut: "weingarten", DaysOpen: DefaultDaysOpen},
	{Key: "mensa-ravensburg", Name: "Ravensburg", Shortcut: "rave", DaysOpen: DefaultDaysOpen},
}

// Lookup resolves a canteen by its shortcut.
func Lookup(shortcut string) (Canteen, error) {
	for _, c := range registry {
		if c.Shortcut == shortcut {
			return c, nil
		}
	}
	return Canteen{}, fmt.Errorf("%w: %q", ErrUnknown, shortcut)
}

// All returns the registered canteens in their declaration order.
func All() []Canteen {
	out := make([]Canteen, len(registry))
	copy(out, registry)
	return out
}

// Count reports the number of registered canteens.
func Count() int {
	return len(registry)
}
