package analysis

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func pipelineSource() *MockSource {
	return &MockSource{
		CandidateRows: []CandidateRow{
			{
				Pair:      "USDJPY",
				Direction: "LONG",
				EntryTime: "09:00",
				CloseTime: "11:00",
				Ranks: map[Strategy]string{
					StrategyWinRate:          "1",
					StrategyProfitEfficiency: "2",
				},
				WinRate30: "55.3%",
			},
			{
				Pair:      "EURUSD", // dropped by the cross-yen filter
				Direction: "SHORT",
				EntryTime: "14:00",
				CloseTime: "16:00",
				Ranks:     map[Strategy]string{StrategyWinRate: "2"},
			},
		},
		OutcomeRows: []OutcomeRow{
			// win_rate rank 1, Monday: profits only.
			outcomeRow("win_rate", "2025-06-16", "Mon", "1", "10"),
			outcomeRow("win_rate", "2025-06-09", "Mon", "1", "20"),
			// profit_efficiency_std rank 2, Monday: below threshold.
			outcomeRow("profit_efficiency_std", "2025-06-16", "Mon", "2", "10"),
			outcomeRow("profit_efficiency_std", "2025-06-16", "Mon", "2", "-10"),
		},
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	analyzer, err := NewAnalyzer(DefaultSettings(), pipelineSource())
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}

	result, err := analyzer.Analyze(context.Background(), referenceNow)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	monday := result.Shortlist[Monday][StrategyWinRate]
	if len(monday) != 1 {
		t.Fatalf("Expected 1 win_rate point on Monday, got %d", len(monday))
	}
	point := monday[0]
	if point.Pair != "USDJPY" || point.Rank != 1 {
		t.Errorf("Unexpected selection: %+v", point)
	}
	if point.ProfitFactor != MaxProfitFactor {
		t.Errorf("Expected lossless sentinel, got %f", point.ProfitFactor)
	}
	if point.Candidate.WinRate30 != 0.553 {
		t.Errorf("Expected win rate 0.553 carried through, got %f", point.Candidate.WinRate30)
	}

	// PF 1.0 is below the 1.3 threshold.
	if pe := result.Shortlist[Monday][StrategyProfitEfficiency]; len(pe) != 0 {
		t.Errorf("Expected profit_efficiency excluded by threshold, got %d points", len(pe))
	}

	if result.Stats.CandidateRows != 2 || result.Stats.OutcomeRows != 4 {
		t.Errorf("Unexpected stats: %+v", result.Stats)
	}
	if result.Stats.ExtractedPoints != 2 {
		t.Errorf("Expected 2 extracted points (one row, two strategies), got %d", result.Stats.ExtractedPoints)
	}

	if result.WeeklySummary[StrategyWinRate] != point.ProfitPips {
		t.Errorf("Weekly summary mismatch: %f vs %f", result.WeeklySummary[StrategyWinRate], point.ProfitPips)
	}
}

func TestAnalyzeIdempotentWithPinnedNow(t *testing.T) {
	analyzer, err := NewAnalyzer(DefaultSettings(), pipelineSource())
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}

	first, err := analyzer.Analyze(context.Background(), referenceNow)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := analyzer.Analyze(context.Background(), referenceNow)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Repeated runs over identical input and reference time must match exactly")
	}
}

func TestAnalyzePropagatesSourceFailures(t *testing.T) {
	wantErr := errors.New("table missing")

	analyzer, err := NewAnalyzer(DefaultSettings(), &MockSource{CandidatesErr: wantErr})
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	if _, err := analyzer.Analyze(context.Background(), referenceNow); !errors.Is(err, wantErr) {
		t.Errorf("Expected wrapped source error, got %v", err)
	}

	analyzer, err = NewAnalyzer(DefaultSettings(), &MockSource{OutcomesErr: wantErr})
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	if _, err := analyzer.Analyze(context.Background(), referenceNow); !errors.Is(err, wantErr) {
		t.Errorf("Expected wrapped source error, got %v", err)
	}
}

func TestNewAnalyzerRejectsUnmappedStrategy(t *testing.T) {
	correlation := map[Strategy]string{
		StrategyWinRate: "win_rate",
		// profit_efficiency, time_efficiency, max_profit unmapped.
	}
	_, err := NewAnalyzerWithStrategies(DefaultSettings(), &MockSource{}, TargetStrategies, correlation)
	if err == nil {
		t.Fatal("Expected construction to fail for unmapped strategy")
	}
}

func TestValidateCorrelationDefaultsComplete(t *testing.T) {
	if err := ValidateCorrelation(TargetStrategies, DefaultCorrelation); err != nil {
		t.Errorf("Default correlation must cover all target strategies: %v", err)
	}
}
