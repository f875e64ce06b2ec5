package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Stats shows catalog aggregates for one publication year. With no argument
// the current year is used; future years are refused before any request.
func (a *App) Stats(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	year := time.Now().Year()
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: stats [year]")
			return nil
		}
		year = parsed
	}
	if year < 1900 || year > time.Now().Year() {
		printlnFn(fmt.Sprintf("Year must be between 1900 and %d.", time.Now().Year()))
		return nil
	}

	stats, err := a.bookService.StatsByYear(ctx, year)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if stats == nil {
		printlnFn(fmt.Sprintf("No data available for %d.", year))
		return nil
	}

	printlnFn(fmt.Sprintf("Books published in %d: %d", stats.Year, stats.TotalBooks))
	printlnFn(fmt.Sprintf("Average price: %.2f", stats.AveragePrice))
	printlnFn(fmt.Sprintf("Price range:   %.2f - %.2f", stats.MinPrice, stats.MaxPrice))

	if len(stats.Genres) > 0 {
		genres := make([]string, 0, len(stats.Genres))
		for g := range stats.Genres {
			genres = append(genres, g)
		}
		sort.Strings(genres)

		printlnFn("By genre:")
		for _, g := range genres {
			printlnFn(fmt.Sprintf("  %-20s %d", g, stats.Genres[g]))
		}
	}
	return nil
}
