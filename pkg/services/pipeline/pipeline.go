package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sm-tools/social-pulse/pkg/export"
	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/sm-tools/social-pulse/pkg/services/insights"
	"github.com/sm-tools/social-pulse/pkg/services/source"
)

// Reporter renders a report to some surface (console, table, ...).
type Reporter interface {
	Handle(report *domain.Report) error
}

// Options configure one pipeline run. Zero-value output paths fall back to
// the default export filenames.
type Options struct {
	Brand         string
	Period        string
	Source        source.Source
	Reporter      Reporter
	CSVPath       string
	DashboardPath string
}

// Run executes the full single-pass pipeline: load, summarize, render the
// console report, export the CSV snapshot, render the HTML dashboard.
// Validation happens before any file is touched; every error is terminal.
func Run(ctx context.Context, opts Options) error {
	logger := zerolog.Ctx(ctx)

	if opts.Source == nil {
		return fmt.Errorf("pipeline: source is required")
	}
	if opts.Brand == "" {
		opts.Brand = "Nike"
	}
	if opts.Period == "" {
		opts.Period = "2025"
	}
	if opts.CSVPath == "" {
		opts.CSVPath = export.DefaultCSVPath
	}
	if opts.DashboardPath == "" {
		opts.DashboardPath = export.DefaultDashboardPath
	}

	table, err := opts.Source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load metrics: %w", err)
	}
	logger.Info().Int("platforms", len(table)).Msg("metrics table loaded")

	summary, err := analytics.Summarize(table)
	if err != nil {
		return fmt.Errorf("summarize metrics: %w", err)
	}

	report := analytics.BuildReport(summary, opts.Brand, opts.Period)
	report.Sections = append(report.Sections, insights.Section(summary, opts.Brand))

	if opts.Reporter != nil {
		if err := opts.Reporter.Handle(report); err != nil {
			return fmt.Errorf("render console report: %w", err)
		}
	}

	if err := export.ExportCSV(opts.CSVPath, summary); err != nil {
		return err
	}
	logger.Info().Str("path", opts.CSVPath).Msg("csv snapshot written")

	if err := export.ExportDashboard(opts.DashboardPath, summary, opts.Brand, opts.Period); err != nil {
		return err
	}
	logger.Info().Str("path", opts.DashboardPath).Msg("html dashboard written")

	return nil
}
