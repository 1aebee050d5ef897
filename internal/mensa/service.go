// Package mensa is the public surface of the meal-plan engine: it
// combines the fetch collaborator, date-tab resolution and document
// extraction into a single Retrieve call.
package mensa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mensa-ukon/internal/canteen"
	"mensa-ukon/internal/datetab"
	"mensa-ukon/internal/extract"
	"mensa-ukon/internal/plan"
)

// Fetcher supplies raw plan documents. Implementations own their
// retry policy and caching; the service never retries on its own.
type Fetcher interface {
	Fetch(ctx context.Context, c canteen.Canteen, lang plan.Language) (string, error)
}

// MealNotFoundError reports that a category filter matched nothing in
// an otherwise resolved day. It is distinct from a date that could not
// be resolved at all, so callers can word their replies accordingly.
type MealNotFoundError struct {
	Meal string
}

func (e *MealNotFoundError) Error() string {
	return fmt.Sprintf("no meal found for %q", e.Meal)
}

// Service is stateless and safe to share across concurrent callers;
// all request-scoped data lives on the call stack.
type Service struct {
	fetcher Fetcher
}

// NewService builds a Service around the given fetch collaborator.
func NewService(f Fetcher) *Service {
	return &Service{fetcher: f}
}

// Retrieve returns the plan of a canteen for one calendar date.
//
// The returned Plan has nil Meals when the date falls outside the
// published window. A non-empty filterMeal restricts the result to the
// single matching category; a filter that matches nothing yields a
// *MealNotFoundError. Fetch failures are propagated unchanged.
func (s *Service) Retrieve(ctx context.Context, shortcut string, date time.Time, lang plan.Language, filterMeal string) (plan.Plan, error) {
	c, err := canteen.Lookup(shortcut)
	if err != nil {
		return plan.Plan{}, err
	}

	markup, err := s.fetcher.Fetch(ctx, c, lang)
	if err != nil {
		return plan.Plan{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return plan.Plan{}, fmt.Errorf("parse plan document: %w", err)
	}

	labels := extract.TabLabels(doc)
	days := extract.ExtractAll(doc, c)

	idx, ok := datetab.Resolve(labels, date, lang)
	if !ok {
		// A legacy document carries no tabs and exactly one day: the
		// endpoint was queried per date, so that day is the one asked
		// for.
		if len(labels) == 0 && len(days) == 1 {
			idx = 0
		} else {
			slog.Debug("no tab for requested date",
				"canteen", c.Key, "date", date.Format("2006-01-02"))
			return plan.Plan{Canteen: c}, nil
		}
	}
	if idx >= len(days) {
		slog.Warn("resolved tab has no day container",
			"canteen", c.Key, "index", idx, "days", len(days))
		return plan.Plan{Canteen: c}, nil
	}

	day := days[idx]
	if filterMeal == "" {
		return plan.Plan{Canteen: c, Meals: day}, nil
	}

	rec, ok := day.Get(plan.NormalizeKey(filterMeal))
	if !ok {
		return plan.Plan{Canteen: c}, &MealNotFoundError{Meal: filterMeal}
	}
	filtered := plan.NewDayPlan()
	filtered.Set(rec)
	return plan.Plan{Canteen: c, Meals: filtered}, nil
}
