package commands

import (
	"context"
	"fmt"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

// runFlags are the flags shared by every command that consumes a metrics
// table. Defaults reproduce the built-in Nike 2025 run, so a bare invocation
// needs no flags at all. An optional profile file supplies the same values;
// explicitly set flags win over it.
type runFlags struct {
	configPath string
	sourceKind string
	inputPath  string
	brand      string
	period     string
}

func (f *runFlags) bind(cmd *cobra.Command) {
	defaults := config.Default()
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to an optional profile file (yaml)")
	cmd.Flags().StringVar(&f.sourceKind, "source", defaults.SourceKind, "Metrics source kind (static, csv, duckdb)")
	cmd.Flags().StringVar(&f.inputPath, "input", "", "Input path for file-backed sources")
	cmd.Flags().StringVar(&f.brand, "brand", defaults.Brand, "Brand the metrics belong to")
	cmd.Flags().StringVar(&f.period, "period", defaults.Period, "Period label for the report")
}

func (f *runFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if cmd.Flags().Changed("source") {
		cfg.SourceKind = f.sourceKind
	}
	if cmd.Flags().Changed("input") {
		cfg.SourcePath = f.inputPath
	}
	if cmd.Flags().Changed("brand") {
		cfg.Brand = f.brand
	}
	if cmd.Flags().Changed("period") {
		cfg.Period = f.period
	}
	return &cfg, nil
}

// summarize loads the configured source and computes the aggregate view.
func summarize(ctx context.Context, sources source.Registry, cfg *config.Config) (*domain.AggregateSummary, error) {
	src, err := sources.Create(cfg.SourceKind, cfg.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q source: %w", cfg.SourceKind, err)
	}

	table, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}

	return analytics.Summarize(table)
}
