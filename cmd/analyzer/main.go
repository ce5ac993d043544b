package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "salescli/internal/errors"
	"salescli/internal/files"
	"salescli/internal/services"
	"salescli/internal/validation"
	"salescli/pkg/contracts/domain"
)

func main() {
	outputDir := flag.String("out", "reports", "output directory for report artifacts")
	format := flag.String("format", "all", "export format: csv, json or all")
	inputDir := flag.String("dir", "", "analyze every export file found in this directory")
	workers := flag.Int("workers", 4, "number of exports analyzed concurrently")
	quiet := flag.Bool("quiet", false, "suppress the per-file summary on stdout")
	flag.Parse()

	if flag.NArg() == 0 && *inputDir == "" {
		fmt.Fprintln(os.Stderr, "usage: analyzer [flags] <export.csv|export.xlsx> ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	exportFormat, err := parseFormat(*format)
	if err != nil {
		slog.Error("Invalid format flag", "error", err)
		os.Exit(2)
	}

	validator := validation.NewFileValidator(slog.Default())
	if err := validator.ValidateOutputDirectory(*outputDir); err != nil {
		slog.Error("Output directory not usable", "error", err)
		os.Exit(1)
	}

	paths := flag.Args()
	if *inputDir != "" {
		exports, err := files.NewDiscovery("").FindExports(*inputDir)
		if err != nil {
			slog.Error("Failed to discover exports", "dir", *inputDir, "error", err)
			os.Exit(1)
		}
		for _, export := range exports {
			paths = append(paths, export.Path)
		}
	}

	if len(paths) == 0 {
		slog.Error("No export files to analyze", "dir", *inputDir)
		os.Exit(1)
	}

	svc := services.NewAnalysisService(slog.Default(), nil)
	ctx := context.Background()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	var mu sync.Mutex
	var reports []*domain.Report
	failed := 0

	for _, path := range paths {
		g.Go(func() error {
			if err := validator.ValidateExportFile(path); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				slog.Error("Skipping export", "path", path, "error", err)
				return nil
			}

			rep, err := svc.AnalyzeFile(ctx, path)
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()

				// Analysis failures are per-file diagnostics, not reasons to
				// abort the batch.
				if apperrors.IsAnalysisFailure(err) {
					slog.Warn("Export could not be analyzed", "path", path, "error", err)
					return nil
				}
				slog.Error("Failed to analyze export", "path", path, "error", err)
				return nil
			}

			if _, err := svc.ExportReport(ctx, rep, *outputDir, exportFormat); err != nil {
				slog.Error("Failed to write report artifacts", "path", path, "error", err)
				return err
			}

			mu.Lock()
			reports = append(reports, rep)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Batch aborted", "error", err)
		os.Exit(1)
	}

	if !*quiet {
		printSummary(reports)
	}

	slog.Info("Batch complete",
		"analyzed", len(reports),
		"failed", failed,
		"output_dir", *outputDir)

	if len(reports) == 0 {
		os.Exit(1)
	}
}

func parseFormat(s string) (services.ExportFormat, error) {
	switch services.ExportFormat(s) {
	case services.FormatCSV, services.FormatJSON, services.FormatAll:
		return services.ExportFormat(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want csv, json or all)", s)
}

func printSummary(reports []*domain.Report) {
	for _, rep := range reports {
		fmt.Printf("\n%s\n", rep.SourceName)
		fmt.Printf("  records: %d, operating days: %d, calendar days: %d\n",
			rep.RecordCount, rep.Summary.OperatingDays, rep.Summary.CalendarDays)
		fmt.Printf("  gross: %.2f, net: %.2f, discounts: %.2f, tips: %.2f, transactions: %.0f\n",
			rep.Summary.Totals[domain.MetricGross],
			rep.Summary.Totals[domain.MetricNet],
			rep.Summary.Totals[domain.MetricDiscounts],
			rep.Summary.Totals[domain.MetricTips],
			rep.Summary.Totals[domain.MetricTransactions])
		for _, signal := range rep.Summary.Signals {
			fmt.Printf("  - %s\n", signal)
		}
	}
}
