package commands

import (
	"fmt"

	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/pipeline"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	runFlags
	csvPath  string
	htmlPath string
	sources  source.Registry
	reporter pipeline.Reporter
}

// NewAnalyzeCmd builds the full-pipeline command: console report, CSV
// snapshot and HTML dashboard in one pass.
func NewAnalyzeCmd(sources source.Registry, reporter pipeline.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{sources: sources, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis pipeline",
		RunE:  ac.Run,
	}

	defaults := config.Default()
	ac.bind(cmd)
	cmd.Flags().StringVar(&ac.csvPath, "csv-out", defaults.CSVPath, "CSV snapshot output path")
	cmd.Flags().StringVar(&ac.htmlPath, "html-out", defaults.DashboardPath, "HTML dashboard output path")

	return cmd
}

func (ac *AnalyzeCmd) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := ac.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("csv-out") {
		cfg.CSVPath = ac.csvPath
	}
	if cmd.Flags().Changed("html-out") {
		cfg.DashboardPath = ac.htmlPath
	}

	src, err := ac.sources.Create(cfg.SourceKind, cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to create %q source: %w", cfg.SourceKind, err)
	}

	err = pipeline.Run(cmd.Context(), pipeline.Options{
		Brand:         cfg.Brand,
		Period:        cfg.Period,
		Source:        src,
		Reporter:      ac.reporter,
		CSVPath:       cfg.CSVPath,
		DashboardPath: cfg.DashboardPath,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Analysis complete. Files %q and %q have been generated.\n", cfg.CSVPath, cfg.DashboardPath)
	return nil
}
