package domain

// PlatformStat is the analyzed view of a single platform: the raw counts
// plus the derived engagement rate and rank. EngagementRate and Rank are nil
// when the platform published no interaction data.
type PlatformStat struct {
	Platform       string
	Followers      int64
	Engagement     *int64
	Posts          int64
	Period         string
	EngagementRate *float64
	Rank           *int
}

// AggregateSummary is the derived, read-only view over a MetricsTable.
// It is recomputed on every run and never cached.
type AggregateSummary struct {
	TotalFollowers  int64
	TotalEngagement int64
	TotalPosts      int64
	AvgFollowers    float64
	Platforms       []PlatformStat // source order
	TopByEngagement string         // platform with the highest engagement rate
	TopByFollowers  string         // platform with the most followers
}
