package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sm-tools/social-pulse/pkg/models/api"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))

	cfg := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Profiles: config.NewStaticRegistry(config.Profile{
				Name: "nike", Brand: "Nike", Period: "2025", SourceKind: "static",
			}),
			Sources: source.NewRegistry(map[string]source.Factory{
				"static": source.StaticFactory,
			}),
			Logger: logger,
		},
	}

	server := httptest.NewServer(ConfigureRouter(cfg))
	t.Cleanup(server.Close)
	return server
}

func TestWebAPI_ListProfiles(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/profiles")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profiles []api.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, "nike", profiles[0].Name)
	assert.Equal(t, "Nike", profiles[0].Brand)
}

func TestWebAPI_GetPlatforms(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/profiles/nike/platforms")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var platforms []api.PlatformMetrics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&platforms))
	require.Len(t, platforms, 7)
	assert.Equal(t, "YouTube", platforms[0].Platform)
}

func TestWebAPI_GetSummary(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/profiles/nike/summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary api.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, "Nike", summary.Brand)
	assert.Equal(t, "TikTok", summary.TopByEngagement)
	assert.Equal(t, "Instagram", summary.TopByFollowers)
	assert.NotZero(t, summary.TotalFollowers)
}

func TestWebAPI_GetDashboard(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/profiles/nike/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Followers by Platform")
}

func TestWebAPI_UnknownProfile(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/profiles/puma/summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
