package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleTable() domain.MetricsTable {
	return domain.MetricsTable{
		{Platform: "Instagram", Followers: 50_000_000, Engagement: domain.Int64(1_200_000), Posts: 300, Period: "2025"},
		{Platform: "X", Followers: 30_000_000, Engagement: domain.Int64(500_000), Posts: 450, Period: "2025"},
	}
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	summary, err := analytics.Summarize(exampleTable())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, summary))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "platform,followers,engagement,posts,period,engagement_rate,rank", string(lines[0]))
	assert.Equal(t, "Instagram,50000000,1200000,300,2025,0.024,1", string(lines[1]))
	assert.Contains(t, string(lines[2]), "X,30000000,500000,450,2025,")
}

func TestExportCSV_RoundTrip(t *testing.T) {
	table := exampleTable()
	summary, err := analytics.Summarize(table)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.csv")
	require.NoError(t, ExportCSV(path, summary))

	reloaded, err := source.NewCSVFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table, reloaded)
}

func TestExportCSV_ByteIdenticalAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	for _, path := range []string{first, second} {
		summary, err := analytics.Summarize(exampleTable())
		require.NoError(t, err)
		require.NoError(t, ExportCSV(path, summary))
	}

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	summary, err := analytics.Summarize(domain.MetricsTable{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, summary))
	assert.Equal(t, "platform,followers,engagement,posts,period,engagement_rate,rank\n", buf.String())
}

func TestExportCSV_UnwritablePath(t *testing.T) {
	summary, err := analytics.Summarize(exampleTable())
	require.NoError(t, err)

	err = ExportCSV(filepath.Join(t.TempDir(), "missing", "snapshot.csv"), summary)
	assert.Error(t, err)
}
