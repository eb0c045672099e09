package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableSource struct {
	table domain.MetricsTable
}

func (s tableSource) Load(_ context.Context) (domain.MetricsTable, error) {
	return s.table, nil
}

type captureReporter struct {
	report *domain.Report
}

func (r *captureReporter) Handle(report *domain.Report) error {
	r.report = report
	return nil
}

func TestRun_FullPipeline(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "snapshot.csv")
	htmlPath := filepath.Join(dir, "dashboard.html")

	reporter := &captureReporter{}
	opts := Options{
		Brand:  "Nike",
		Period: "2025",
		Source: tableSource{table: domain.MetricsTable{
			{Platform: "Instagram", Followers: 50_000_000, Engagement: domain.Int64(1_200_000), Posts: 300, Period: "2025"},
			{Platform: "X", Followers: 30_000_000, Engagement: domain.Int64(500_000), Posts: 450, Period: "2025"},
		}},
		Reporter:      reporter,
		CSVPath:       csvPath,
		DashboardPath: htmlPath,
	}

	require.NoError(t, Run(context.Background(), opts))

	require.NotNil(t, reporter.report)
	assert.Equal(t, "Nike Social Media Analytics Report 2025", reporter.report.Title)
	// analytics sections plus the strategic recommendations one
	require.Len(t, reporter.report.Sections, 4)
	assert.Equal(t, int64(80_000_000), reporter.report.Sections[0].Summary["Total Followers"])
	assert.Equal(t, int64(1_700_000), reporter.report.Sections[0].Summary["Total Engagement"])

	csvContent, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvContent), "Instagram,50000000,1200000,300,2025")

	htmlContent, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(htmlContent), "Followers by Platform")
}

func TestRun_DataErrorBeforeAnyFileIsWritten(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "snapshot.csv")
	htmlPath := filepath.Join(dir, "dashboard.html")

	opts := Options{
		Source: tableSource{table: domain.MetricsTable{
			{Platform: "Instagram", Followers: -5},
		}},
		CSVPath:       csvPath,
		DashboardPath: htmlPath,
	}

	err := Run(context.Background(), opts)
	require.Error(t, err)
	var dataErr *domain.DataError
	assert.ErrorAs(t, err, &dataErr)

	_, statErr := os.Stat(csvPath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(htmlPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_RequiresSource(t *testing.T) {
	assert.Error(t, Run(context.Background(), Options{}))
}

func TestRun_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Source:        tableSource{table: domain.MetricsTable{}},
		CSVPath:       filepath.Join(dir, "snapshot.csv"),
		DashboardPath: filepath.Join(dir, "dashboard.html"),
	}
	require.NoError(t, Run(context.Background(), opts))

	csvContent, err := os.ReadFile(opts.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, "platform,followers,engagement,posts,period,engagement_rate,rank\n", string(csvContent))
}
