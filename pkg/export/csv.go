package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
)

// DefaultCSVPath is where the analyzed snapshot lands when no path is given.
const DefaultCSVPath = "nike_social_media_analysis_2025.csv"

// csvHeader matches the analyzed row attributes. The first five columns are
// the raw table fields, the last two the derived ones; feeding the file back
// through the csv source reproduces the raw table.
var csvHeader = []string{"platform", "followers", "engagement", "posts", "period", "engagement_rate", "rank"}

// WriteCSV serializes the analyzed platforms to w in source order.
// Output is deterministic: identical input produces identical bytes.
func WriteCSV(w io.Writer, summary *domain.AggregateSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, stat := range summary.Platforms {
		row := []string{
			stat.Platform,
			strconv.FormatInt(stat.Followers, 10),
			formatOptionalInt(stat.Engagement),
			strconv.FormatInt(stat.Posts, 10),
			stat.Period,
			formatOptionalFloat(stat.EngagementRate),
			formatOptionalRank(stat.Rank),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row for %q: %w", stat.Platform, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the snapshot to path, truncating any existing file.
func ExportCSV(path string, summary *domain.AggregateSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}

	if err := WriteCSV(f, summary); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csv: close file %q: %w", path, err)
	}
	return nil
}

func formatOptionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptionalRank(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
