package commands

import (
	"fmt"

	"github.com/sm-tools/social-pulse/pkg/models/store"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/sm-tools/social-pulse/pkg/store/duckdb"
	"github.com/sm-tools/social-pulse/pkg/store/duckdb/metrics"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	runFlags
	dbPath  string
	sources source.Registry
}

// NewSeedCmd builds the command that loads the configured source into a
// local DuckDB database file, from where the duckdb source can read it back.
func NewSeedCmd(sources source.Registry) *cobra.Command {
	sc := &SeedCmd{sources: sources}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the configured metrics source into a DuckDB database",
		RunE:  sc.run,
	}
	sc.bind(cmd)
	cmd.Flags().StringVar(&sc.dbPath, "db-out", "metrics.db", "DuckDB database output path")
	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := sc.resolve(cmd)
	if err != nil {
		return err
	}

	src, err := sc.sources.Create(cfg.SourceKind, cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to create %q source: %w", cfg.SourceKind, err)
	}

	table, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load metrics: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: sc.dbPath})
	if err != nil {
		return fmt.Errorf("open metrics database %q: %w", sc.dbPath, err)
	}
	defer db.Close()

	metricsStore, err := metrics.NewStore(db)
	if err != nil {
		return err
	}

	records := make([]store.MetricsRecord, 0, len(table))
	for _, row := range table {
		records = append(records, store.MetricsRecord{
			Platform:     row.Platform,
			Period:       row.Period,
			Followers:    row.Followers,
			Engagement:   row.Engagement,
			Posts:        row.Posts,
			ProvidedRate: row.ProvidedRate,
		})
	}

	// all rows land in one transaction so a failed seed leaves no partial table
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := metricsStore.Add(duckdb.WithTransaction(ctx, tx), records); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	cmd.Printf("Seeded %d platforms into %q.\n", len(records), sc.dbPath)
	return nil
}
