package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/sm-tools/social-pulse/pkg/services/insights"
)

// DefaultDashboardPath is where the HTML dashboard lands when no path is given.
const DefaultDashboardPath = "nike_dashboard.html"

// WriteDashboard renders the HTML dashboard to w: a followers bar chart, an
// engagement-rate bar chart over the platforms with a known rate, a
// per-platform metrics table and the strategic recommendations block. An
// empty table yields a chartless page rather than an error.
func WriteDashboard(w io.Writer, summary *domain.AggregateSummary, brand, period string) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s Social Media Dashboard %s", brand, period)
	page.SetLayout(components.PageFlexLayout)

	if len(summary.Platforms) > 0 {
		page.AddCharts(followersChart(summary))
	}
	if rates := ratedPlatforms(summary); len(rates) > 0 {
		page.AddCharts(engagementRateChart(rates))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("dashboard: render: %w", err)
	}

	html := buf.Bytes()
	if len(summary.Platforms) == 0 {
		_, err := w.Write(html)
		return err
	}

	extras, err := renderExtras(summary, brand)
	if err != nil {
		return fmt.Errorf("dashboard: render table and insights: %w", err)
	}

	// go-echarts owns the page skeleton; the table and insights block are
	// spliced in before the closing body tag.
	idx := bytes.LastIndex(html, []byte("</body>"))
	if idx < 0 {
		idx = len(html)
	}
	for _, chunk := range [][]byte{html[:idx], extras, html[idx:]} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("dashboard: write: %w", err)
		}
	}
	return nil
}

// ExportDashboard writes the dashboard to path, truncating any existing file.
func ExportDashboard(path string, summary *domain.AggregateSummary, brand, period string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dashboard: create file %q: %w", path, err)
	}

	if err := WriteDashboard(f, summary, brand, period); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("dashboard: close file %q: %w", path, err)
	}
	return nil
}

func followersChart(summary *domain.AggregateSummary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Followers by Platform"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Platform"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Followers"}),
	)

	names := make([]string, 0, len(summary.Platforms))
	values := make([]opts.BarData, 0, len(summary.Platforms))
	for _, stat := range summary.Platforms {
		names = append(names, stat.Platform)
		values = append(values, opts.BarData{Value: stat.Followers})
	}

	bar.SetXAxis(names).AddSeries("Followers", values)
	return bar
}

func ratedPlatforms(summary *domain.AggregateSummary) []domain.PlatformStat {
	var rated []domain.PlatformStat
	for _, stat := range summary.Platforms {
		if stat.EngagementRate != nil {
			rated = append(rated, stat)
		}
	}
	return rated
}

func engagementRateChart(rated []domain.PlatformStat) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Engagement Rate by Platform"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Platform"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Engagement Rate (%)"}),
	)

	names := make([]string, 0, len(rated))
	values := make([]opts.BarData, 0, len(rated))
	for _, stat := range rated {
		names = append(names, stat.Platform)
		values = append(values, opts.BarData{Value: *stat.EngagementRate * 100})
	}

	bar.SetXAxis(names).AddSeries("Engagement Rate (%)", values)
	return bar
}

type dashboardRow struct {
	Platform   string
	Followers  string
	Engagement string
	Posts      string
	Rate       string
	Rank       string
}

type dashboardExtras struct {
	Rows             []dashboardRow
	ExecutiveSummary string
	Recommendations  []insights.Recommendation
}

var extrasTemplate = template.Must(template.New("extras").Parse(`
<div style="max-width:1100px;margin:24px auto;font-family:sans-serif;">
<h2>Platform Metrics</h2>
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;width:100%;">
<tr><th>Platform</th><th>Followers</th><th>Engagement</th><th>Posts</th><th>Engagement Rate</th><th>Rank</th></tr>
{{range .Rows}}<tr><td>{{.Platform}}</td><td>{{.Followers}}</td><td>{{.Engagement}}</td><td>{{.Posts}}</td><td>{{.Rate}}</td><td>{{.Rank}}</td></tr>
{{end}}</table>
<h2>Strategic Recommendations</h2>
{{if .ExecutiveSummary}}<p><em>{{.ExecutiveSummary}}</em></p>
{{end}}<ul>
{{range .Recommendations}}<li><strong>{{.Platform}}</strong>: {{.Text}}</li>
{{end}}</ul>
</div>
`))

func renderExtras(summary *domain.AggregateSummary, brand string) ([]byte, error) {
	data := dashboardExtras{
		ExecutiveSummary: insights.ExecutiveSummary(summary, brand),
		Recommendations:  insights.Recommendations(summary),
	}
	for _, stat := range summary.Platforms {
		data.Rows = append(data.Rows, dashboardRow{
			Platform:   stat.Platform,
			Followers:  strconv.FormatInt(stat.Followers, 10),
			Engagement: orNA(formatOptionalInt(stat.Engagement)),
			Posts:      strconv.FormatInt(stat.Posts, 10),
			Rate:       analytics.FormatRate(stat.EngagementRate),
			Rank:       orNA(formatOptionalRank(stat.Rank)),
		})
	}

	var buf bytes.Buffer
	if err := extrasTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
