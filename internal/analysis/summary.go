package analysis

// SummarizeWeek reduces a shortlist to one aggregate expected-pips figure
// per strategy across all weekdays. Strategies with no selected points
// report 0.0 rather than being omitted.
func SummarizeWeek(shortlist Shortlist, strategies []Strategy) map[Strategy]float64 {
	summary := make(map[Strategy]float64, len(strategies))
	for _, strategy := range strategies {
		summary[strategy] = 0.0
	}

	for _, byStrategy := range shortlist {
		for _, strategy := range strategies {
			for _, point := range byStrategy[strategy] {
				summary[strategy] += point.ProfitPips
			}
		}
	}
	return summary
}
