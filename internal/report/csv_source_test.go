package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fx-anomaly-analyzer/internal/analysis"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestCandidatesHeaderDriven(t *testing.T) {
	dir := t.TempDir()
	content := "pair,direction,day_direction,entry_time,close_time,win_rate,max_profit,win_rate_30d,win_rate_avg\n" +
		"USDJPY,LONG,LONG,09:00,11:00,1,,55.3%,0.51\n" +
		"EURJPY,SHORT,,23:30,01:00,,5,48%,\n"
	path := writeFile(t, dir, "candidates.csv", content)

	source := NewCSVSource(path, "", analysis.TargetStrategies)
	rows, err := source.Candidates(context.Background())
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Pair != "USDJPY" || first.EntryTime != "09:00" {
		t.Errorf("Unexpected first row: %+v", first)
	}
	if first.Ranks[analysis.StrategyWinRate] != "1" {
		t.Errorf("Expected win_rate rank '1', got %q", first.Ranks[analysis.StrategyWinRate])
	}
	if first.WinRate30 != "55.3%" {
		t.Errorf("Expected raw win rate string, got %q", first.WinRate30)
	}

	second := rows[1]
	if second.Ranks[analysis.StrategyMaxProfit] != "5" {
		t.Errorf("Expected max_profit rank '5', got %q", second.Ranks[analysis.StrategyMaxProfit])
	}
	if second.DayDirection != "" {
		t.Errorf("Expected empty day_direction, got %q", second.DayDirection)
	}
}

func TestCandidatesStripsBOM(t *testing.T) {
	dir := t.TempDir()
	content := "\xEF\xBB\xBFpair,direction,entry_time,close_time\nUSDJPY,LONG,09:00,11:00\n"
	path := writeFile(t, dir, "candidates.csv", content)

	source := NewCSVSource(path, "", analysis.TargetStrategies)
	rows, err := source.Candidates(context.Background())
	if err != nil {
		t.Fatalf("Candidates failed on BOM input: %v", err)
	}
	if len(rows) != 1 || rows[0].Pair != "USDJPY" {
		t.Errorf("BOM not stripped from header: %+v", rows)
	}
}

func TestCandidatesMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "candidates.csv", "pair,direction,entry_time\nUSDJPY,LONG,09:00\n")

	source := NewCSVSource(path, "", analysis.TargetStrategies)
	if _, err := source.Candidates(context.Background()); err == nil {
		t.Error("Expected error for missing close_time column")
	}
}

func TestCandidatesMissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv"), "", analysis.TargetStrategies)
	if _, err := source.Candidates(context.Background()); err == nil {
		t.Error("Expected error for missing candidate report")
	}
}

func TestOutcomes(t *testing.T) {
	dir := t.TempDir()
	content := "\xEF\xBB\xBFpoint_name,trade_date,weekday,rank,profit_pips_sum\n" +
		"win_rate,2025-06-16,Mon,1,12.5\n" +
		"max_profit,2025-06-17,Tue,3,-4.0\n"
	path := writeFile(t, dir, "outcomes.csv", content)

	source := NewCSVSource("", path, analysis.TargetStrategies)
	rows, err := source.Outcomes(context.Background())
	if err != nil {
		t.Fatalf("Outcomes failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].PointName != "win_rate" || rows[0].ProfitPips != "12.5" {
		t.Errorf("Unexpected first outcome row: %+v", rows[0])
	}
	if rows[1].Weekday != "Tue" || rows[1].Rank != "3" {
		t.Errorf("Unexpected second outcome row: %+v", rows[1])
	}
}

func TestOutcomesMissingFile(t *testing.T) {
	source := NewCSVSource("", filepath.Join(t.TempDir(), "absent.csv"), analysis.TargetStrategies)
	if _, err := source.Outcomes(context.Background()); err == nil {
		t.Error("Expected error for missing outcome report")
	}
}
