package source

import (
	"context"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
)

// staticSource serves the built-in Nike 2025 dataset. Engagement counts are
// the published average likes + comments per post; LinkedIn and Pinterest
// publish follower counts only. TikTok ships an officially reported
// engagement rate which overrides the computed one.
type staticSource struct{}

// NewStatic returns the embedded dataset source.
func NewStatic() Source {
	return staticSource{}
}

// StaticFactory adapts NewStatic to the registry factory signature.
// The input path is ignored.
func StaticFactory(_ string) (Source, error) {
	return NewStatic(), nil
}

func (staticSource) Load(_ context.Context) (domain.MetricsTable, error) {
	table := domain.MetricsTable{
		{Platform: "YouTube", Followers: 2_090_000, Engagement: domain.Int64(4_038), Posts: 410, Period: "2025"},
		{Platform: "Instagram", Followers: 303_000_000, Engagement: domain.Int64(99_830), Posts: 1_250, Period: "2025"},
		{Platform: "TikTok", Followers: 4_900_000, Engagement: domain.Int64(2_239), Posts: 680, Period: "2025", ProvidedRate: domain.Float64(0.0282)},
		{Platform: "Facebook", Followers: 39_000_000, Engagement: domain.Int64(5_629), Posts: 520, Period: "2025"},
		{Platform: "Twitter/X", Followers: 9_700_000, Engagement: domain.Int64(5_100), Posts: 2_300, Period: "2025"},
		{Platform: "LinkedIn", Followers: 4_000_000, Posts: 180, Period: "2025"},
		{Platform: "Pinterest", Followers: 1_100_000, Posts: 95, Period: "2025"},
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
