package telegram

import (
	"errors"
	"fmt"
	"time"
)

// errPastDate rejects bot queries for dates that already passed;
// the published window never reaches backwards anyway.
var errPastDate = errors.New("no past dates allowed")

// parseDate understands the relative keywords the bot advertises plus
// ISO dates. The result keeps now's location.
func parseDate(arg string, now time.Time) (time.Time, error) {
	switch arg {
	case "today", "heute", "Today", "Heute":
		return now, nil
	case "tomorrow", "morgen", "Tomorrow", "Morgen":
		return now.AddDate(0, 0, 1), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", arg, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date %q: %w", arg, err)
	}
	if parsed.Before(startOfDay(now)) {
		return time.Time{}, errPastDate
	}
	return parsed, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
