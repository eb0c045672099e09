package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
)

// csvSource reads a metrics table from a local CSV file. The expected layout
// matches the CSV export: a header row naming the columns, one line per
// platform. Derived columns (engagement_rate, rank) are tolerated and
// ignored so an exported snapshot can be fed straight back in.
type csvSource struct {
	path string
}

// NewCSVFile returns a source reading the CSV file at path.
func NewCSVFile(path string) Source {
	return &csvSource{path: path}
}

// CSVFactory adapts NewCSVFile to the registry factory signature.
func CSVFactory(path string) (Source, error) {
	if path == "" {
		return nil, fmt.Errorf("csv source requires an input path")
	}
	return NewCSVFile(path), nil
}

func (s *csvSource) Load(_ context.Context) (domain.MetricsTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open metrics csv %q: %w", s.path, err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (domain.MetricsTable, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, &domain.DataError{Reason: "csv input is empty, header row required"}
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"platform", "followers"} {
		if _, ok := cols[required]; !ok {
			return nil, &domain.DataError{Reason: fmt.Sprintf("csv header missing %q column", required)}
		}
	}

	var table domain.MetricsTable
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		row := domain.PlatformMetrics{Platform: field(record, cols, "platform")}

		row.Followers, err = parseCount(record, cols, "followers", line)
		if err != nil {
			return nil, err
		}
		row.Posts, err = parseCount(record, cols, "posts", line)
		if err != nil {
			return nil, err
		}
		row.Period = field(record, cols, "period")

		if v := field(record, cols, "engagement"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, &domain.DataError{Platform: row.Platform, Reason: fmt.Sprintf("line %d: engagement %q is not an integer", line, v)}
			}
			row.Engagement = &n
		}

		table = append(table, row)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseCount(record []string, cols map[string]int, name string, line int) (int64, error) {
	v := field(record, cols, name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &domain.DataError{Reason: fmt.Sprintf("line %d: %s %q is not an integer", line, name, v)}
	}
	return n, nil
}
