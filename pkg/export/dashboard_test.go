package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDashboard_ChartsReferenceEveryPlatform(t *testing.T) {
	summary, err := analytics.Summarize(exampleTable())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, summary, "Nike", "2025"))

	html := buf.String()
	assert.Contains(t, html, "Instagram")
	assert.Contains(t, html, "X")
	assert.Contains(t, html, "Followers by Platform")
	assert.Contains(t, html, "Engagement Rate by Platform")
	assert.Contains(t, html, "Nike Social Media Dashboard 2025")
}

func TestWriteDashboard_TableAndInsights(t *testing.T) {
	table := append(exampleTable(), domain.PlatformMetrics{
		Platform: "LinkedIn", Followers: 4_000_000, Posts: 180, Period: "2025",
	})
	summary, err := analytics.Summarize(table)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, summary, "Nike", "2025"))

	html := buf.String()
	assert.Contains(t, html, "Platform Metrics")
	assert.Contains(t, html, "<table")
	assert.Contains(t, html, "<td>50000000</td>")
	assert.Contains(t, html, "2.40%")
	// platforms without interaction data render as N/A, unranked
	assert.Contains(t, html, "<td>N/A</td>")

	assert.Contains(t, html, "Strategic Recommendations")
	assert.Contains(t, html, "Instagram leads Nike&#39;s social channels in engagement rate, followed by X.")
	assert.Contains(t, html, "user-generated content")

	// the block lands inside the document body
	assert.Greater(t, strings.Index(html, "</body>"), strings.Index(html, "Strategic Recommendations"))
}

func TestWriteDashboard_EmptyTable(t *testing.T) {
	summary, err := analytics.Summarize(domain.MetricsTable{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, summary, "Nike", "2025"))
	assert.NotContains(t, buf.String(), "Followers by Platform")
	assert.NotContains(t, buf.String(), "Platform Metrics")
}

func TestExportDashboard_WritesFile(t *testing.T) {
	summary, err := analytics.Summarize(exampleTable())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dashboard.html")
	require.NoError(t, ExportDashboard(path, summary, "Nike", "2025"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Instagram")
}

func TestExportDashboard_UnwritablePath(t *testing.T) {
	summary, err := analytics.Summarize(exampleTable())
	require.NoError(t, err)

	err = ExportDashboard(filepath.Join(t.TempDir(), "missing", "dashboard.html"), summary, "Nike", "2025")
	assert.Error(t, err)
}
