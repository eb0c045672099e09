package insights

import (
	"fmt"

	"github.com/sm-tools/social-pulse/pkg/models/domain"
)

// Recommendation pairs a platform with a strategic growth suggestion.
type Recommendation struct {
	Platform string
	Text     string
}

// Curated per-platform playbook. Only platforms present in the analyzed
// table surface in the output.
var playbook = map[string]string{
	"Instagram": "Leverage user-generated content and micro-influencers to boost authenticity.",
	"Facebook":  "Use interactive posts and targeted campaigns to encourage sharing and comments.",
	"Twitter/X": "Engage with trending topics and real-time conversations to increase visibility.",
	"TikTok":    "Double down on short-form video trends and creator collaborations.",
	"YouTube":   "Invest in long-form storytelling and community posts to retain subscribers.",
}

// Recommendations returns playbook entries for the platforms in the summary,
// in source order.
func Recommendations(summary *domain.AggregateSummary) []Recommendation {
	var recs []Recommendation
	for _, stat := range summary.Platforms {
		if text, ok := playbook[stat.Platform]; ok {
			recs = append(recs, Recommendation{Platform: stat.Platform, Text: text})
		}
	}
	return recs
}

// ExecutiveSummary phrases the engagement ranking as a short narrative.
// Empty when no platform has a known engagement rate.
func ExecutiveSummary(summary *domain.AggregateSummary, brand string) string {
	var first, second string
	for _, stat := range summary.Platforms {
		if stat.Rank == nil {
			continue
		}
		switch *stat.Rank {
		case 1:
			first = stat.Platform
		case 2:
			second = stat.Platform
		}
	}
	if first == "" {
		return ""
	}
	if second == "" {
		return fmt.Sprintf("%s leads %s's social channels in engagement rate. "+
			"Other platforms should adopt tailored strategies to grow audience interaction.", first, brand)
	}
	return fmt.Sprintf("%s leads %s's social channels in engagement rate, followed by %s. "+
		"Other platforms show lower engagement and should adopt tailored strategies to grow audience interaction.",
		first, brand, second)
}

// Section shapes recommendations and the executive summary into a report
// section appended after the analytics sections.
func Section(summary *domain.AggregateSummary, brand string) domain.ReportSection {
	section := domain.ReportSection{Title: "Strategic Recommendations"}
	for _, rec := range Recommendations(summary) {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        rec.Platform,
			Description: rec.Text,
		})
	}
	if exec := ExecutiveSummary(summary, brand); exec != "" {
		section.Summary = map[string]interface{}{"Executive Summary": exec}
	}
	return section
}
