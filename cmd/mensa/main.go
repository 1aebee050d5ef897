// Command mensa retrieves the canteen plan from a terminal, like a
// sane person.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mensa-ukon/internal/fetch"
	"mensa-ukon/internal/mensa"
	"mensa-ukon/internal/plan"
	"mensa-ukon/internal/render"
)

var (
	flagDate     string
	flagLanguage string
	flagCanteen  string
	flagFormat   string
	flagVerbose  int
)

func main() {
	root := &cobra.Command{
		Use:   "mensa [meal]",
		Short: "Access the meal plan of Uni Konstanz' canteens",
		Long: "Retrieves the daily meal offerings of the Seezeit canteens.\n" +
			"An optional meal argument restricts the output to a single category,\n" +
			"e.g. 'stammessen' or 'wok'.",
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	root.Flags().StringVarP(&flagDate, "date", "d", "", "date for the plan (default: today; format: Y-m-d)")
	root.Flags().StringVarP(&flagLanguage, "language", "l", "de", "language of the descriptions (de, en)")
	root.Flags().StringVarP(&flagCanteen, "canteen", "c", "giessberg", "canteen to show (giessberg, htwg, fn, weingarten, rave)")
	root.Flags().StringVarP(&flagFormat, "format", "f", "plain", "output format (plain, json)")
	root.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(flagVerbose)

	lang := plan.Language(flagLanguage)
	if lang != plan.DE && lang != plan.EN {
		return fmt.Errorf("unsupported language %q", flagLanguage)
	}

	date := time.Now()
	if flagDate != "" {
		var err error
		date, err = time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", flagDate, err)
		}
	}

	filterMeal := ""
	if len(args) == 1 {
		filterMeal = args[0]
	}

	svc := mensa.NewService(fetch.NewClient())
	p, err := svc.Retrieve(cmd.Context(), flagCanteen, date, lang, filterMeal)
	if err != nil {
		var notFound *mensa.MealNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no meal found for %q on %s", notFound.Meal, date.Format("2006-01-02"))
		}
		return err
	}
	if !p.Found() {
		return fmt.Errorf("no meals found for day %s", date.Format("2006-01-02"))
	}

	switch flagFormat {
	case "json":
		out, err := render.JSON(p, date)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	case "plain":
		fmt.Fprint(cmd.OutOrStdout(), render.Plain(p, date))
	default:
		return fmt.Errorf("format not known: %s", flagFormat)
	}
	return nil
}

// setupLogging maps the -v count onto slog levels: warnings by
// default, info with -v, debug with -vv.
func setupLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(level)
}
