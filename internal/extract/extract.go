// Package extract parses a fetched meal-plan document into per-day
// meal mappings. Two incompatible document eras exist: the current
// tabbed layout with CSS-class icon markers, and the legacy table
// layout with inline shorthand icons. The layout is sniffed from the
// document itself.
package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mensa-ukon/internal/canteen"
	"mensa-ukon/internal/icon"
	"mensa-ukon/internal/plan"
	"mensa-ukon/internal/textnorm"
)

// Layout identifies the document era.
type Layout int

const (
	// LayoutTabbed is the current two-week listing: one clickable tab
	// per open day, day containers with per-category entries and icon
	// marker elements.
	LayoutTabbed Layout = iota
	// LayoutTable is the legacy single-day table: alternating rows of
	// (category, description) cells with inline shorthand icons.
	LayoutTable
)

// DetectLayout sniffs which document era the markup belongs to.
func DetectLayout(doc *goquery.Document) Layout {
	if doc.Find("div.tx-speiseplan").Length() > 0 {
		return LayoutTabbed
	}
	return LayoutTable
}

// TabLabels returns the rendered date-tab labels in document order.
// Legacy documents have no tabs and yield nil.
func TabLabels(doc *goquery.Document) []string {
	var labels []string
	doc.Find("div.tx-speiseplan div.tabs a").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	return labels
}

// ExtractAll parses every day present in the document, in tab order.
// Structural anomalies are logged and tolerated: the upstream HTML is
// not under our control and partial results are better than none. A
// document without any day container yields an empty result.
func ExtractAll(doc *goquery.Document, c canteen.Canteen) []*plan.DayPlan {
	switch DetectLayout(doc) {
	case LayoutTable:
		return extractTable(doc, c)
	default:
		return extractTabbed(doc, c)
	}
}

func extractTabbed(doc *goquery.Document, c canteen.Canteen) []*plan.DayPlan {
	containers := doc.Find("div[id^=tab]")
	if containers.Length() == 0 {
		slog.Warn("document has no day containers", "canteen", c.Key)
		return nil
	}
	if containers.Length() != c.DaysOpen {
		slog.Warn("unexpected day count in document",
			"canteen", c.Key, "want", c.DaysOpen, "got", containers.Length())
	}

	days := make([]*plan.DayPlan, 0, containers.Length())
	containers.Each(func(_ int, day *goquery.Selection) {
		dp := plan.NewDayPlan()
		day.Find("div.speiseplanTagKat").Each(func(_ int, entry *goquery.Selection) {
			category := strings.TrimSpace(entry.Find(".category").First().Text())
			key := plan.NormalizeKey(category)
			if key == "" {
				slog.Warn("meal entry without category label", "canteen", c.Key)
				return
			}
			title := entry.Find(".title").First().Text()
			dp.Set(plan.MealRecord{
				Key:         key,
				Category:    category,
				Description: textnorm.FixKnownMisspellings(textnorm.CleanText(title)),
				Icons:       markerIcons(entry),
			})
		})
		days = append(days, dp)
	})
	return days
}

// markerIcons reads the CSS class tokens of the entry's icon marker
// elements. Unknown tokens (layout classes and the like) are skipped.
func markerIcons(entry *goquery.Selection) []icon.Icon {
	var icons []icon.Icon
	entry.Find(".speiseplanTagKatIcon").Each(func(_ int, marker *goquery.Selection) {
		classes, _ := marker.Attr("class")
		for _, token := range strings.Fields(classes) {
			if ic, ok := icon.Classify(token); ok {
				icons = append(icons, ic)
			}
		}
	})
	return icons
}

// extractTable handles the legacy layout. The old endpoint was queried
// per date, so one document carries exactly one day. Meal rows
// alternate with additive-detail rows, hence the every-other stride.
func extractTable(doc *goquery.Document, c canteen.Canteen) []*plan.DayPlan {
	rows := doc.Find("tr")
	if rows.Length() == 0 {
		slog.Warn("document has no meal rows", "canteen", c.Key)
		return nil
	}

	dp := plan.NewDayPlan()
	rows.Each(func(i int, row *goquery.Selection) {
		if i%2 != 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() != 2 {
			slog.Warn("meal row with unexpected cell count",
				"canteen", c.Key, "cells", cols.Length())
			return
		}
		category := strings.TrimSpace(cols.Eq(0).Text())
		key := plan.NormalizeKey(category)
		if key == "" {
			return
		}
		icons, desc := icon.ExtractInline(textnorm.CleanText(cols.Eq(1).Text()))
		dp.Set(plan.MealRecord{
			Key:         key,
			Category:    category,
			Description: textnorm.FixKnownMisspellings(textnorm.CleanText(desc)),
			Icons:       icons,
		})
	})
	return []*plan.DayPlan{dp}
}
