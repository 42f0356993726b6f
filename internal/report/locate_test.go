package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveBaseDatePinnedWins(t *testing.T) {
	got, err := ResolveBaseDate(t.TempDir(), "2025-06-22", "2025-01-01")
	if err != nil {
		t.Fatalf("ResolveBaseDate failed: %v", err)
	}
	if got != "2025-06-22" {
		t.Errorf("Expected pinned date, got %s", got)
	}
}

func TestResolveBaseDateDiscoversNewestDir(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"2025-06-08", "2025-06-22", "2025-06-15", "notes", "2025-06"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	got, err := ResolveBaseDate(root, "", "2025-01-01")
	if err != nil {
		t.Fatalf("ResolveBaseDate failed: %v", err)
	}
	if got != "2025-06-22" {
		t.Errorf("Expected newest dated directory 2025-06-22, got %s", got)
	}
}

func TestResolveBaseDateFallback(t *testing.T) {
	got, err := ResolveBaseDate(t.TempDir(), "", "2025-06-22")
	if err != nil {
		t.Fatalf("ResolveBaseDate failed: %v", err)
	}
	if got != "2025-06-22" {
		t.Errorf("Expected fallback date, got %s", got)
	}
}

func TestResolveBaseDateNoCandidates(t *testing.T) {
	if _, err := ResolveBaseDate(t.TempDir(), "", ""); err == nil {
		t.Error("Expected error with no dated directory and no fallback")
	}
}

func TestLocateReportsPrefersBaseDir(t *testing.T) {
	root := t.TempDir()
	baseDir := filepath.Join(root, "2025-06-22")
	if err := os.Mkdir(baseDir, 0o755); err != nil {
		t.Fatalf("Failed to create base dir: %v", err)
	}
	writeFile(t, baseDir, "weekly_anomaly_report_a.csv", "x")
	writeFile(t, root, "weekly_anomaly_report_b.csv", "x")
	writeFile(t, root, "point_pnl_breakdown_a.csv", "x")

	candidatePath, outcomePath, err := LocateReports(root, "2025-06-22", "weekly_anomaly_report_*.csv", "point_pnl_breakdown_*.csv")
	if err != nil {
		t.Fatalf("LocateReports failed: %v", err)
	}
	if filepath.Dir(candidatePath) != baseDir {
		t.Errorf("Expected candidate report from base dir, got %s", candidatePath)
	}
	// Outcome report only exists at the root.
	if filepath.Dir(outcomePath) != root {
		t.Errorf("Expected outcome report from root, got %s", outcomePath)
	}
}

func TestLocateReportsMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "weekly_anomaly_report_a.csv", "x")

	if _, _, err := LocateReports(root, "2025-06-22", "weekly_anomaly_report_*.csv", "point_pnl_breakdown_*.csv"); err == nil {
		t.Error("Expected error when outcome report is absent")
	}
}
