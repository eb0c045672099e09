package metrics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sm-tools/social-pulse/pkg/models/store"
	"github.com/sm-tools/social-pulse/pkg/store/duckdb"
)

// Store reads and seeds platform metrics in a local DuckDB file. Reads keep
// insertion order so the analyzed table mirrors the stored one.
type Store interface {
	Add(ctx context.Context, records []store.MetricsRecord) error
	GetPlatformMetrics(ctx context.Context, period string) ([]store.MetricsRecord, error)
}

type metricsStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &metricsStore{db: db}, nil
}

func (m *metricsStore) Add(ctx context.Context, records []store.MetricsRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO platform_metrics (
			platform, period, followers, engagement, posts, provided_rate
		) VALUES (
			?, ?, ?, ?, ?, ?
		)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = m.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.Platform,
			record.Period,
			record.Followers,
			nullableInt(record.Engagement),
			record.Posts,
			nullableFloat(record.ProvidedRate),
		)
		if err != nil {
			return fmt.Errorf("insert record for %q: %w", record.Platform, err)
		}
	}

	return nil
}

// GetPlatformMetrics returns stored rows, optionally filtered to one period.
// An empty period returns everything.
func (m *metricsStore) GetPlatformMetrics(ctx context.Context, period string) ([]store.MetricsRecord, error) {
	query := `
		SELECT platform, period, followers, engagement, posts, provided_rate
		FROM platform_metrics
	`
	var args []interface{}
	if period != "" {
		query += " WHERE period = ?"
		args = append(args, period)
	}
	query += " ORDER BY rowid"

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query platform metrics: %w", err)
	}
	defer rows.Close()
	return scanMetricsRows(rows)
}

func scanMetricsRows(rows *sql.Rows) ([]store.MetricsRecord, error) {
	records := make([]store.MetricsRecord, 0)
	for rows.Next() {
		var (
			platform, period string
			followers, posts int64
			engagement       sql.NullInt64
			providedRate     sql.NullFloat64
		)
		if err := rows.Scan(&platform, &period, &followers, &engagement, &posts, &providedRate); err != nil {
			return nil, err
		}
		record := store.MetricsRecord{
			Platform:  platform,
			Period:    period,
			Followers: followers,
			Posts:     posts,
		}
		if engagement.Valid {
			v := engagement.Int64
			record.Engagement = &v
		}
		if providedRate.Valid {
			v := providedRate.Float64
			record.ProvidedRate = &v
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func nullableInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
