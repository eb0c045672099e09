package analytics

import (
	"fmt"
	"sort"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
)

// Summarize computes the aggregate view over a metrics table: totals,
// averages, per-platform engagement rates and the engagement ranking.
// It is deterministic and has no side effects. The table is validated
// first; a malformed row aborts the run before anything is derived.
func Summarize(table domain.MetricsTable) (*domain.AggregateSummary, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	summary := &domain.AggregateSummary{
		Platforms: make([]domain.PlatformStat, 0, len(table)),
	}

	for _, row := range table {
		stat := domain.PlatformStat{
			Platform:       row.Platform,
			Followers:      row.Followers,
			Engagement:     row.Engagement,
			Posts:          row.Posts,
			Period:         row.Period,
			EngagementRate: engagementRate(row),
		}
		summary.TotalFollowers += row.Followers
		if row.Engagement != nil {
			summary.TotalEngagement += *row.Engagement
		}
		summary.TotalPosts += row.Posts
		summary.Platforms = append(summary.Platforms, stat)
	}

	if len(table) > 0 {
		summary.AvgFollowers = float64(summary.TotalFollowers) / float64(len(table))
	}

	rankByEngagement(summary.Platforms)

	for _, stat := range summary.Platforms {
		if stat.Rank != nil && *stat.Rank == 1 {
			summary.TopByEngagement = stat.Platform
		}
	}
	var maxFollowers int64 = -1
	for _, stat := range summary.Platforms {
		if stat.Followers > maxFollowers {
			maxFollowers = stat.Followers
			summary.TopByFollowers = stat.Platform
		}
	}

	return summary, nil
}

// engagementRate returns the provided rate when the platform publishes one,
// otherwise engagement / followers. Nil when the rate cannot be derived.
func engagementRate(row domain.PlatformMetrics) *float64 {
	if row.ProvidedRate != nil {
		v := *row.ProvidedRate
		return &v
	}
	if row.Engagement == nil || row.Followers == 0 {
		return nil
	}
	v := float64(*row.Engagement) / float64(row.Followers)
	return &v
}

// rankByEngagement assigns 1-based ranks over platforms with a known rate,
// highest rate first. Ties keep source order. Platforms without a rate stay
// unranked.
func rankByEngagement(stats []domain.PlatformStat) {
	ranked := make([]int, 0, len(stats))
	for i, s := range stats {
		if s.EngagementRate != nil {
			ranked = append(ranked, i)
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return *stats[ranked[a]].EngagementRate > *stats[ranked[b]].EngagementRate
	})
	for pos, idx := range ranked {
		r := pos + 1
		stats[idx].Rank = &r
	}
}

// FormatRate renders an engagement rate as a percentage with two decimals,
// "N/A" when unknown.
func FormatRate(rate *float64) string {
	if rate == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *rate*100)
}

// BuildReport shapes a summary into the rendering-agnostic report structure
// consumed by the console and dashboard reporters.
func BuildReport(summary *domain.AggregateSummary, brand, period string) *domain.Report {
	report := &domain.Report{
		Title:  fmt.Sprintf("%s Social Media Analytics Report %s", brand, period),
		Brand:  brand,
		Period: period,
	}

	overview := domain.ReportSection{
		Title: "Overview",
		Summary: map[string]interface{}{
			"Total Followers":   summary.TotalFollowers,
			"Total Engagement":  summary.TotalEngagement,
			"Total Posts":       summary.TotalPosts,
			"Average Followers": fmt.Sprintf("%.0f", summary.AvgFollowers),
		},
	}
	report.Sections = append(report.Sections, overview)

	breakdown := domain.ReportSection{Title: "Platform Breakdown"}
	for _, stat := range summary.Platforms {
		desc := fmt.Sprintf("engagement rate %s", FormatRate(stat.EngagementRate))
		if stat.Rank != nil {
			desc = fmt.Sprintf("%s, rank %d", desc, *stat.Rank)
		}
		breakdown.Details = append(breakdown.Details, domain.ReportDetail{
			Name:        stat.Platform,
			Value:       stat.Followers,
			Unit:        "followers",
			Description: desc,
		})
	}
	report.Sections = append(report.Sections, breakdown)

	ranking := domain.ReportSection{Title: "Engagement Ranking"}
	ranked := make([]domain.PlatformStat, 0, len(summary.Platforms))
	for _, stat := range summary.Platforms {
		if stat.Rank != nil {
			ranked = append(ranked, stat)
		}
	}
	sort.Slice(ranked, func(a, b int) bool { return *ranked[a].Rank < *ranked[b].Rank })
	for _, stat := range ranked {
		ranking.Details = append(ranking.Details, domain.ReportDetail{
			Name:        stat.Platform,
			Value:       FormatRate(stat.EngagementRate),
			Description: fmt.Sprintf("rank %d of %d", *stat.Rank, len(ranked)),
		})
	}
	report.Sections = append(report.Sections, ranking)

	return report
}
