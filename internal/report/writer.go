package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"fx-anomaly-analyzer/internal/analysis"
)

var subColumns = []string{"Pair", "Entry", "Close", "Direction", "Rank", "PF", "Result"}

// WriteOutput serializes an analysis result as the weekly output CSV:
// a base-date header line, then per weekday a separator, a dated
// weekday header, a two-row compound header spanning the strategies,
// and the lockstep data grid.
func WriteOutput(path, baseDate string, result *analysis.Result, strategies []analysis.Strategy) error {
	dates, err := weekdayDates(baseDate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{baseDate}); err != nil {
		return err
	}
	if err := w.Write([]string{}); err != nil {
		return err
	}

	for _, day := range analysis.Weekdays() {
		if err := w.Write([]string{}); err != nil {
			return err
		}
		if err := w.Write([]string{"", fmt.Sprintf("%s(%s)", day, dates[day])}); err != nil {
			return err
		}

		strategyHeader := []string{""}
		for _, strategy := range strategies {
			strategyHeader = append(strategyHeader, strategy.DisplayName())
			for i := 1; i < len(subColumns); i++ {
				strategyHeader = append(strategyHeader, "")
			}
		}
		if err := w.Write(strategyHeader); err != nil {
			return err
		}

		columnHeader := []string{""}
		for range strategies {
			columnHeader = append(columnHeader, subColumns...)
		}
		if err := w.Write(columnHeader); err != nil {
			return err
		}

		for _, line := range analysis.BuildGrid(result.Formatted[day], strategies) {
			if err := w.Write(line); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// weekdayDates maps each trading weekday to its date within the base
// date's week, formatted YYYY/MM/DD. A Sunday base date rolls forward to
// the week starting the next day; any other base date anchors to its own
// week's Monday.
func weekdayDates(baseDate string) (map[analysis.Weekday]string, error) {
	base, err := time.Parse("2006-01-02", baseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid base date %q: %w", baseDate, err)
	}

	var monday time.Time
	if base.Weekday() == time.Sunday {
		monday = base.AddDate(0, 0, 1)
	} else {
		monday = base.AddDate(0, 0, -(int(base.Weekday()) - 1))
	}

	dates := make(map[analysis.Weekday]string, 5)
	for i, day := range analysis.Weekdays() {
		dates[day] = monday.AddDate(0, 0, i).Format("2006/01/02")
	}
	return dates, nil
}
