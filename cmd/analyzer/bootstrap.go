package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"fx-anomaly-analyzer/internal/analysis"
	"fx-anomaly-analyzer/internal/analysis/analysisobs"
	"fx-anomaly-analyzer/internal/interfaces"
	"fx-anomaly-analyzer/internal/logger"
	"fx-anomaly-analyzer/internal/report"
	"fx-anomaly-analyzer/internal/store"
	"fx-anomaly-analyzer/internal/trace"
)

// initializeSystem initializes environment, logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// buildAnalyzer wires the CSV source into the pipeline with
// observability.
func buildAnalyzer(cfg *store.Config, candidatePath, outcomePath string) (interfaces.EntryPointAnalyzer, error) {
	settings := analysis.Settings{
		AnalysisWeeks: cfg.Analysis.Weeks,
		PFThreshold:   cfg.Analysis.PFThreshold,
		MaxResults:    cfg.Analysis.MaxResults,
	}

	source := report.NewCSVSource(candidatePath, outcomePath, analysis.TargetStrategies)
	analyzer, err := analysis.NewAnalyzer(settings, source)
	if err != nil {
		return nil, err
	}
	return analysisobs.Wrap(analyzer), nil
}
