package interfaces

import (
	"context"
	"time"

	"fx-anomaly-analyzer/internal/analysis"
)

// EntryPointAnalyzer defines the interface for the weekday entry-point
// selection pipeline.
type EntryPointAnalyzer interface {
	// Analyze runs extraction, aggregation and selection anchored at the
	// given reference instant.
	Analyze(ctx context.Context, now time.Time) (*analysis.Result, error)

	// Strategies returns the strategy universe in display order.
	Strategies() []analysis.Strategy
}
