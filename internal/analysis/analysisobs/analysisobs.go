package analysisobs

import (
	"context"
	"time"

	"fx-anomaly-analyzer/internal/analysis"
	"fx-anomaly-analyzer/internal/interfaces"
	"fx-anomaly-analyzer/internal/logger"
	"fx-anomaly-analyzer/internal/trace"
)

type observableAnalyzer struct {
	analyzer interfaces.EntryPointAnalyzer
}

var _ interfaces.EntryPointAnalyzer = (*observableAnalyzer)(nil)

func Wrap(analyzer interfaces.EntryPointAnalyzer) interfaces.EntryPointAnalyzer {
	return &observableAnalyzer{
		analyzer: analyzer,
	}
}

func (oa *observableAnalyzer) Analyze(ctx context.Context, now time.Time) (*analysis.Result, error) {
	ctx, span := trace.StartSpan(ctx, "analysis.Analyze")
	defer span.End()

	logger.InfoSkip(ctx, 1, "Starting weekday entry-point analysis",
		"reference_date", now.Format("2006-01-02"),
	)

	result, err := oa.analyzer.Analyze(ctx, now)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Weekday entry-point analysis failed", err,
			"reference_date", now.Format("2006-01-02"),
		)
		return nil, err
	}

	for _, day := range analysis.Weekdays() {
		for _, strategy := range oa.analyzer.Strategies() {
			points := result.Shortlist[day][strategy]
			expected := 0.0
			for _, p := range points {
				expected += p.ProfitPips
			}
			logger.Selection(ctx, day.String(), string(strategy), len(points), expected)
		}
	}

	logger.InfoSkip(ctx, 1, "Weekday entry-point analysis completed",
		"reference_date", now.Format("2006-01-02"),
		"candidate_rows", result.Stats.CandidateRows,
		"outcome_rows", result.Stats.OutcomeRows,
		"extracted_points", result.Stats.ExtractedPoints,
	)
	return result, nil
}

func (oa *observableAnalyzer) Strategies() []analysis.Strategy {
	return oa.analyzer.Strategies()
}
