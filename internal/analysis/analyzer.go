package analysis

import (
	"context"
	"fmt"
	"time"
)

// Analyzer runs the full selection pipeline: extract candidates,
// aggregate outcomes, join and select, then summarize and format.
type Analyzer struct {
	settings    Settings
	strategies  []Strategy
	correlation map[Strategy]string
	source      Source
	extractor   *CandidateExtractor
}

// NewAnalyzer builds an analyzer over the default strategy universe and
// correlation map. The correlation map is validated up front so a
// strategy that could never match is a construction error, not an empty
// shortlist.
func NewAnalyzer(settings Settings, source Source) (*Analyzer, error) {
	return NewAnalyzerWithStrategies(settings, source, TargetStrategies, DefaultCorrelation)
}

func NewAnalyzerWithStrategies(settings Settings, source Source, strategies []Strategy, correlation map[Strategy]string) (*Analyzer, error) {
	if err := ValidateCorrelation(strategies, correlation); err != nil {
		return nil, fmt.Errorf("invalid strategy correlation: %w", err)
	}
	return &Analyzer{
		settings:    settings,
		strategies:  strategies,
		correlation: correlation,
		source:      source,
		extractor:   NewCandidateExtractor(strategies),
	}, nil
}

// Analyze performs one batch run. The reference instant anchors the
// trailing aggregation window; passing the same instant over identical
// input reproduces the result exactly.
func (a *Analyzer) Analyze(ctx context.Context, now time.Time) (*Result, error) {
	candidateRows, err := a.source.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate report: %w", err)
	}
	outcomeRows, err := a.source.Outcomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load outcome report: %w", err)
	}

	candidates := a.extractor.Extract(candidateRows)

	aggregator := NewOutcomeAggregator(a.settings.AnalysisWeeks, now)
	buckets := aggregator.Aggregate(outcomeRows)

	selector := NewOptimalPointSelector(a.settings, a.strategies, a.correlation)
	shortlist := selector.Select(candidates, buckets)

	return &Result{
		AnalysisDate:  now,
		Settings:      a.settings,
		Shortlist:     shortlist,
		WeeklySummary: SummarizeWeek(shortlist, a.strategies),
		Formatted:     FormatResults(shortlist, a.strategies),
		Stats: Stats{
			CandidateRows:   len(candidateRows),
			OutcomeRows:     len(outcomeRows),
			ExtractedPoints: len(candidates),
			AnalysisWeeks:   a.settings.AnalysisWeeks,
		},
	}, nil
}

// Strategies returns the analyzer's strategy universe in display order.
func (a *Analyzer) Strategies() []Strategy {
	return a.strategies
}
