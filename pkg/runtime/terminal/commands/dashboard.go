package commands

import (
	"github.com/sm-tools/social-pulse/pkg/export"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

type DashboardCmd struct {
	runFlags
	htmlPath string
	sources  source.Registry
}

// NewDashboardCmd builds the HTML-only command.
func NewDashboardCmd(sources source.Registry) *cobra.Command {
	dc := &DashboardCmd{sources: sources}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the HTML dashboard",
		RunE:  dc.run,
	}
	dc.bind(cmd)
	cmd.Flags().StringVar(&dc.htmlPath, "html-out", config.Default().DashboardPath, "HTML dashboard output path")
	return cmd
}

func (dc *DashboardCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := dc.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("html-out") {
		cfg.DashboardPath = dc.htmlPath
	}

	summary, err := summarize(cmd.Context(), dc.sources, cfg)
	if err != nil {
		return err
	}

	if err := export.ExportDashboard(cfg.DashboardPath, summary, cfg.Brand, cfg.Period); err != nil {
		return err
	}
	cmd.Printf("Dashboard written to %q.\n", cfg.DashboardPath)
	return nil
}
