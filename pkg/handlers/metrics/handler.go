package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/sm-tools/social-pulse/pkg/export"
	"github.com/sm-tools/social-pulse/pkg/models/api"
	"github.com/sm-tools/social-pulse/pkg/models/domain"
	"github.com/sm-tools/social-pulse/pkg/services/analytics"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
)

type Handler struct {
	profiles config.Registry
	sources  source.Registry
}

func NewHandler(profiles config.Registry, sources source.Registry) *Handler {
	return &Handler{
		profiles: profiles,
		sources:  sources,
	}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.profiles.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}

	response := make([]api.Profile, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, api.Profile{Name: p.Name, Brand: p.Brand, Period: p.Period})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode profiles")
	}
}

func (h *Handler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "profile")

	_, summary, err := h.summarize(ctx, name)
	if err != nil {
		logger.Error().Err(err).Str("profile", name).Msg("failed to analyze profile")
		writeAnalysisError(w, err)
		return
	}

	response := make([]api.PlatformMetrics, 0, len(summary.Platforms))
	for _, stat := range summary.Platforms {
		response = append(response, toAPIPlatform(stat))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("profile", name).Msg("failed to encode platforms")
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "profile")

	profile, summary, err := h.summarize(ctx, name)
	if err != nil {
		logger.Error().Err(err).Str("profile", name).Msg("failed to analyze profile")
		writeAnalysisError(w, err)
		return
	}

	response := api.Summary{
		Brand:           profile.Brand,
		Period:          profile.Period,
		TotalFollowers:  summary.TotalFollowers,
		TotalEngagement: summary.TotalEngagement,
		TotalPosts:      summary.TotalPosts,
		AvgFollowers:    summary.AvgFollowers,
		TopByEngagement: summary.TopByEngagement,
		TopByFollowers:  summary.TopByFollowers,
	}
	for _, stat := range summary.Platforms {
		response.Platforms = append(response.Platforms, toAPIPlatform(stat))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("profile", name).Msg("failed to encode summary")
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "profile")

	profile, summary, err := h.summarize(ctx, name)
	if err != nil {
		logger.Error().Err(err).Str("profile", name).Msg("failed to analyze profile")
		writeAnalysisError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := export.WriteDashboard(w, summary, profile.Brand, profile.Period); err != nil {
		logger.Error().Err(err).Str("profile", name).Msg("failed to render dashboard")
	}
}

func (h *Handler) summarize(ctx context.Context, name string) (*config.Profile, *domain.AggregateSummary, error) {
	profile, err := h.profiles.GetProfile(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	src, err := h.sources.Create(profile.SourceKind, profile.SourcePath)
	if err != nil {
		return nil, nil, err
	}

	table, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	summary, err := analytics.Summarize(table)
	if err != nil {
		return nil, nil, err
	}
	return profile, summary, nil
}

func toAPIPlatform(stat domain.PlatformStat) api.PlatformMetrics {
	return api.PlatformMetrics{
		Platform:       stat.Platform,
		Followers:      stat.Followers,
		Engagement:     stat.Engagement,
		Posts:          stat.Posts,
		Period:         stat.Period,
		EngagementRate: stat.EngagementRate,
		Rank:           stat.Rank,
	}
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	var dataErr *domain.DataError
	if errors.As(err, &dataErr) {
		http.Error(w, dataErr.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, "analysis failed", http.StatusInternalServerError)
}
