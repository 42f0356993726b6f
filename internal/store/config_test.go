package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "analysis: {}\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Analysis.Weeks != 26 {
		t.Errorf("Expected default weeks 26, got %d", cfg.Analysis.Weeks)
	}
	if cfg.Analysis.PFThreshold != 1.3 {
		t.Errorf("Expected default threshold 1.3, got %f", cfg.Analysis.PFThreshold)
	}
	if cfg.Analysis.MaxResults != 20 {
		t.Errorf("Expected default max results 20, got %d", cfg.Analysis.MaxResults)
	}
	if cfg.Reports.Root != "." {
		t.Errorf("Expected default root '.', got %q", cfg.Reports.Root)
	}
	if cfg.Reports.CandidateGlob == "" || cfg.Reports.OutcomeGlob == "" {
		t.Error("Expected default report globs")
	}
	if cfg.Output.Prefix != "output_" {
		t.Errorf("Expected default output prefix, got %q", cfg.Output.Prefix)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
analysis:
  weeks: 12
  pf_threshold: 2.0
  max_results: 5
reports:
  root: "/data"
  base_date: "2025-06-22"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Analysis.Weeks != 12 || cfg.Analysis.PFThreshold != 2.0 || cfg.Analysis.MaxResults != 5 {
		t.Errorf("Overrides not applied: %+v", cfg.Analysis)
	}
	if cfg.Reports.BaseDate != "2025-06-22" {
		t.Errorf("Expected pinned base date, got %q", cfg.Reports.BaseDate)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative weeks", "analysis:\n  weeks: -1\n"},
		{"negative threshold", "analysis:\n  pf_threshold: -0.5\n"},
		{"bad base date", "reports:\n  base_date: \"22-06-2025\"\n"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
