package export

import (
	"bytes"
	"testing"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle_TableLayout(t *testing.T) {
	table := domain.MetricsTable{
		{Platform: "Instagram", Followers: 50_000_000, Engagement: domain.Int64(1_200_000), Posts: 300, Period: "2025"},
		{Platform: "X", Followers: 30_000_000, Engagement: domain.Int64(500_000), Posts: 450, Period: "2025"},
	}
	summary, err := analytics.Summarize(table)
	require.NoError(t, err)
	report := analytics.BuildReport(summary, "Nike", "2025")

	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	require.NoError(t, reporter.Handle(report))

	out := buf.String()
	assert.Contains(t, out, "Nike Social Media Analytics Report 2025")
	assert.Contains(t, out, "=== Platform Breakdown ===")
	assert.Contains(t, out, "| Instagram")
	assert.Contains(t, out, "| X")
	assert.Contains(t, out, "+--")
	assert.Contains(t, out, "Total Followers: 80000000")
}
