package commands

import (
	"github.com/sm-tools/social-pulse/pkg/export"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	runFlags
	csvPath string
	sources source.Registry
}

// NewExportCmd builds the CSV-only command.
func NewExportCmd(sources source.Registry) *cobra.Command {
	ec := &ExportCmd{sources: sources}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the analyzed metrics table to a CSV file",
		RunE:  ec.run,
	}
	ec.bind(cmd)
	cmd.Flags().StringVar(&ec.csvPath, "csv-out", config.Default().CSVPath, "CSV snapshot output path")
	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := ec.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("csv-out") {
		cfg.CSVPath = ec.csvPath
	}

	summary, err := summarize(cmd.Context(), ec.sources, cfg)
	if err != nil {
		return err
	}

	if err := export.ExportCSV(cfg.CSVPath, summary); err != nil {
		return err
	}
	cmd.Printf("CSV snapshot written to %q.\n", cfg.CSVPath)
	return nil
}
