package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fx-anomaly-analyzer/internal/analysis"
	"fx-anomaly-analyzer/internal/logger"
	"fx-anomaly-analyzer/internal/report"
	"fx-anomaly-analyzer/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	defer trace.Shutdown(ctx)

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	// An explicit base date from the command line wins over the config
	// pin and directory discovery.
	pinned := cfg.Reports.BaseDate
	if len(os.Args) > 1 {
		pinned = os.Args[1]
	}
	baseDate, err := report.ResolveBaseDate(cfg.Reports.Root, pinned, cfg.Reports.DefaultBaseDate)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to resolve base date", err)
		return err
	}
	logger.Info(ctx, "Resolved base date", "base_date", baseDate)

	candidatePath, outcomePath, err := report.LocateReports(cfg.Reports.Root, baseDate, cfg.Reports.CandidateGlob, cfg.Reports.OutcomeGlob)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to locate report files", err)
		return err
	}
	logger.Info(ctx, "Located report files",
		"candidate_report", candidatePath,
		"outcome_report", outcomePath,
	)

	analyzer, err := buildAnalyzer(cfg, candidatePath, outcomePath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build analyzer", err)
		return err
	}

	result, err := analyzer.Analyze(ctx, time.Now())
	if err != nil {
		return err
	}

	outputPath := cfg.Output.Prefix + baseDate + ".csv"
	if err := report.WriteOutput(outputPath, baseDate, result, analyzer.Strategies()); err != nil {
		logger.ErrorWithErr(ctx, "Failed to write output", err)
		return err
	}

	finalPath, err := report.OrganizeRun(cfg.Reports.Root, baseDate, outputPath, candidatePath, outcomePath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to organize run files", err)
		return err
	}
	logger.Info(ctx, "Output written", "output_file", finalPath)

	printSummary(result, analyzer.Strategies(), finalPath)
	return nil
}

func printSummary(result *analysis.Result, strategies []analysis.Strategy, outputPath string) {
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("               WEEKDAY ENTRY-POINT ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("Reference Date:     %s\n", result.AnalysisDate.Format("2006-01-02"))
	fmt.Printf("Lookback Window:    %d weeks\n", result.Stats.AnalysisWeeks)
	fmt.Printf("Candidate Rows:     %d\n", result.Stats.CandidateRows)
	fmt.Printf("Outcome Rows:       %d\n", result.Stats.OutcomeRows)
	fmt.Printf("Extracted Points:   %d\n", result.Stats.ExtractedPoints)
	fmt.Println()

	for _, day := range analysis.Weekdays() {
		total := 0
		for _, strategy := range strategies {
			total += len(result.Shortlist[day][strategy])
		}
		fmt.Printf("  %-10s %d selected points\n", day.String()+":", total)
	}

	fmt.Println()
	fmt.Println("Weekly expected pips by strategy:")
	for _, strategy := range strategies {
		fmt.Printf("  %-18s %+.1f\n", strategy.DisplayName()+":", result.WeeklySummary[strategy])
	}
	fmt.Println()
	fmt.Printf("Results saved to %s\n", outputPath)
}
