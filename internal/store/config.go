package store

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var baseDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Config struct {
	Analysis struct {
		// Weeks is the trailing outcome window to aggregate.
		Weeks int `yaml:"weeks"`
		// PFThreshold is the minimum profit factor for shortlist entry.
		PFThreshold float64 `yaml:"pf_threshold"`
		// MaxResults caps the shortlist per weekday and strategy.
		MaxResults int `yaml:"max_results"`
	} `yaml:"analysis"`

	Reports struct {
		// Root is the directory holding the per-base-date report folders.
		Root string `yaml:"root"`
		// BaseDate pins the run to one base-date folder (YYYY-MM-DD).
		// Empty means discover the newest dated folder under Root.
		BaseDate string `yaml:"base_date"`
		// DefaultBaseDate is used when discovery finds no dated folder.
		DefaultBaseDate string `yaml:"default_base_date"`
		// CandidateGlob and OutcomeGlob locate the two report files
		// inside the base-date folder.
		CandidateGlob string `yaml:"candidate_glob"`
		OutcomeGlob   string `yaml:"outcome_glob"`
	} `yaml:"reports"`

	Output struct {
		// Prefix of the generated CSV file name, completed with the base
		// date.
		Prefix string `yaml:"prefix"`
	} `yaml:"output"`
}

func (c *Config) Validate() error {
	if c.Analysis.Weeks <= 0 {
		return fmt.Errorf("analysis.weeks must be positive, got %d", c.Analysis.Weeks)
	}
	if c.Analysis.PFThreshold <= 0 {
		return fmt.Errorf("analysis.pf_threshold must be positive, got %.2f", c.Analysis.PFThreshold)
	}
	if c.Analysis.MaxResults <= 0 {
		return fmt.Errorf("analysis.max_results must be positive, got %d", c.Analysis.MaxResults)
	}
	if c.Reports.BaseDate != "" && !baseDatePattern.MatchString(c.Reports.BaseDate) {
		return fmt.Errorf("reports.base_date must be YYYY-MM-DD, got '%s'", c.Reports.BaseDate)
	}
	if c.Reports.DefaultBaseDate != "" && !baseDatePattern.MatchString(c.Reports.DefaultBaseDate) {
		return fmt.Errorf("reports.default_base_date must be YYYY-MM-DD, got '%s'", c.Reports.DefaultBaseDate)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Analysis.Weeks == 0 {
		c.Analysis.Weeks = 26
	}
	if c.Analysis.PFThreshold == 0 {
		c.Analysis.PFThreshold = 1.3
	}
	if c.Analysis.MaxResults == 0 {
		c.Analysis.MaxResults = 20
	}
	if c.Reports.Root == "" {
		c.Reports.Root = "."
	}
	if c.Reports.CandidateGlob == "" {
		c.Reports.CandidateGlob = "weekly_anomaly_report_*.csv"
	}
	if c.Reports.OutcomeGlob == "" {
		c.Reports.OutcomeGlob = "point_pnl_breakdown_*.csv"
	}
	if c.Output.Prefix == "" {
		c.Output.Prefix = "output_"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
