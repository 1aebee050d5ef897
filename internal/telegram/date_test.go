package telegram

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateKeywords(t *testing.T) {
	now := time.Date(2018, time.August, 13, 11, 30, 0, 0, time.UTC)

	for _, arg := range []string{"today", "heute", "Today", "Heute"} {
		got, err := parseDate(arg, now)
		if err != nil || !got.Equal(now) {
			t.Errorf("parseDate(%q) = (%v, %v), want now", arg, got, err)
		}
	}
	for _, arg := range []string{"tomorrow", "morgen", "Tomorrow", "Morgen"} {
		got, err := parseDate(arg, now)
		if err != nil || !got.Equal(now.AddDate(0, 0, 1)) {
			t.Errorf("parseDate(%q) = (%v, %v), want tomorrow", arg, got, err)
		}
	}
}

func TestParseDateISO(t *testing.T) {
	now := time.Date(2018, time.August, 13, 11, 30, 0, 0, time.UTC)

	got, err := parseDate("2018-08-16", now)
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	want := time.Date(2018, time.August, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}

	// today's own date is not "past"
	if _, err := parseDate("2018-08-13", now); err != nil {
		t.Errorf("parseDate(today's date) failed: %v", err)
	}
}

func TestParseDatePast(t *testing.T) {
	now := time.Date(2018, time.August, 13, 11, 30, 0, 0, time.UTC)
	if _, err := parseDate("2018-08-12", now); !errors.Is(err, errPastDate) {
		t.Errorf("err = %v, want errPastDate", err)
	}
}

func TestParseDateGarbage(t *testing.T) {
	now := time.Date(2018, time.August, 13, 11, 30, 0, 0, time.UTC)
	for _, arg := range []string{"yesterday", "13.08.2018", "2018-13-40", "soon"} {
		if _, err := parseDate(arg, now); err == nil {
			t.Errorf("parseDate(%q) accepted", arg)
		}
	}
}
