package source

import (
	"context"
	"fmt"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/store/duckdb"
	"github.com/sm-tools/social-pulse/pkg/store/duckdb/metrics"
)

// duckdbSource reads the metrics table from a local DuckDB database file.
// Purely an input adapter: rows are read once per run, nothing is written.
type duckdbSource struct {
	store  metrics.Store
	period string
}

// NewDuckDB returns a source reading from an already-constructed store.
// An empty period loads every stored row.
func NewDuckDB(store metrics.Store, period string) Source {
	return &duckdbSource{store: store, period: period}
}

// duckdbFileSource opens the database file per Load and closes it before
// returning, so long-lived callers never hold a file handle between runs.
type duckdbFileSource struct {
	path string
}

// DuckDBFactory adapts a database file path to the registry factory
// signature. The file is not opened until Load.
func DuckDBFactory(path string) (Source, error) {
	if path == "" {
		return nil, fmt.Errorf("duckdb source requires a database path")
	}
	return &duckdbFileSource{path: path}, nil
}

func (s *duckdbFileSource) Load(ctx context.Context) (domain.MetricsTable, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: s.path})
	if err != nil {
		return nil, fmt.Errorf("open metrics database %q: %w", s.path, err)
	}
	defer db.Close()

	store, err := metrics.NewStore(db)
	if err != nil {
		return nil, err
	}
	return NewDuckDB(store, "").Load(ctx)
}

func (s *duckdbSource) Load(ctx context.Context) (domain.MetricsTable, error) {
	records, err := s.store.GetPlatformMetrics(ctx, s.period)
	if err != nil {
		return nil, fmt.Errorf("load metrics from store: %w", err)
	}

	table := make(domain.MetricsTable, 0, len(records))
	for _, record := range records {
		table = append(table, domain.PlatformMetrics{
			Platform:     record.Platform,
			Followers:    record.Followers,
			Engagement:   record.Engagement,
			Posts:        record.Posts,
			Period:       record.Period,
			ProvidedRate: record.ProvidedRate,
		})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
