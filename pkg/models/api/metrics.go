package api

type Profile struct {
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Period string `json:"period"`
}

type PlatformMetrics struct {
	Platform       string   `json:"platform"`
	Followers      int64    `json:"followers"`
	Engagement     *int64   `json:"engagement,omitempty"`
	Posts          int64    `json:"posts"`
	Period         string   `json:"period"`
	EngagementRate *float64 `json:"engagement_rate,omitempty"`
	Rank           *int     `json:"rank,omitempty"`
}

type Summary struct {
	Brand           string            `json:"brand"`
	Period          string            `json:"period"`
	TotalFollowers  int64             `json:"total_followers"`
	TotalEngagement int64             `json:"total_engagement"`
	TotalPosts      int64             `json:"total_posts"`
	AvgFollowers    float64           `json:"avg_followers"`
	TopByEngagement string            `json:"top_by_engagement"`
	TopByFollowers  string            `json:"top_by_followers"`
	Platforms       []PlatformMetrics `json:"platforms"`
}
