package commands

import (
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/sm-tools/social-pulse/pkg/services/insights"
	"github.com/sm-tools/social-pulse/pkg/services/pipeline"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	runFlags
	sources  source.Registry
	reporter pipeline.Reporter
}

// NewReportCmd builds the console-only command: no files are written.
func NewReportCmd(sources source.Registry, reporter pipeline.Reporter) *cobra.Command {
	rc := &ReportCmd{sources: sources, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the summary report to the console",
		RunE:  rc.run,
	}
	rc.bind(cmd)
	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := rc.resolve(cmd)
	if err != nil {
		return err
	}

	summary, err := summarize(cmd.Context(), rc.sources, cfg)
	if err != nil {
		return err
	}

	report := analytics.BuildReport(summary, cfg.Brand, cfg.Period)
	report.Sections = append(report.Sections, insights.Section(summary, cfg.Brand))
	return rc.reporter.Handle(report)
}
