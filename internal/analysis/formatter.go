package analysis

import "fmt"

// displayColumns is the per-strategy sub-column count in the output grid.
const displayColumns = 7

// FormatResults reshapes a shortlist into flat per-weekday display rows.
// Rows keep strategy order then shortlist order; selection semantics are
// untouched.
func FormatResults(shortlist Shortlist, strategies []Strategy) map[Weekday][]DisplayRow {
	formatted := make(map[Weekday][]DisplayRow, len(Weekdays()))

	for _, day := range Weekdays() {
		rows := []DisplayRow{}
		for _, strategy := range strategies {
			for _, point := range shortlist[day][strategy] {
				rows = append(rows, DisplayRow{
					Strategy:     strategy,
					Pair:         point.Pair,
					EntryTime:    point.EntryTime,
					CloseTime:    point.CloseTime,
					Direction:    point.Direction,
					Rank:         point.Rank,
					ProfitFactor: fmt.Sprintf("%.2f", point.ProfitFactor),
					Result:       "",
				})
			}
		}
		formatted[day] = rows
	}
	return formatted
}

// BuildGrid arranges one weekday's display rows with the strategies side
// by side: each grid row is a 1-based index cell followed by seven cells
// per strategy. Shorter strategy lists are padded with blank cells up to
// the weekday's longest list, keeping the strategies in lockstep.
func BuildGrid(rows []DisplayRow, strategies []Strategy) [][]string {
	byStrategy := make(map[Strategy][]DisplayRow, len(strategies))
	for _, row := range rows {
		byStrategy[row.Strategy] = append(byStrategy[row.Strategy], row)
	}

	maxRows := 0
	for _, strategy := range strategies {
		if n := len(byStrategy[strategy]); n > maxRows {
			maxRows = n
		}
	}

	grid := make([][]string, 0, maxRows)
	for i := 0; i < maxRows; i++ {
		line := make([]string, 0, 1+displayColumns*len(strategies))
		line = append(line, fmt.Sprintf("%d", i+1))
		for _, strategy := range strategies {
			points := byStrategy[strategy]
			if i < len(points) {
				p := points[i]
				line = append(line, p.Pair, p.EntryTime, p.CloseTime, p.Direction, fmt.Sprintf("%d", p.Rank), p.ProfitFactor, p.Result)
			} else {
				line = append(line, "", "", "", "", "", "", "")
			}
		}
		grid = append(grid, line)
	}
	return grid
}
