package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const MetricsTableSchema = `
	CREATE TABLE IF NOT EXISTS platform_metrics (
		platform VARCHAR NOT NULL,
		period VARCHAR NOT NULL,
		followers BIGINT NOT NULL,
		engagement BIGINT NULL,
		posts BIGINT NOT NULL DEFAULT 0,
		provided_rate DOUBLE NULL,
		PRIMARY KEY (platform, period)
	);
`

var bootQueries = []string{
	MetricsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
