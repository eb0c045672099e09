package metrics

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sm-tools/social-pulse/pkg/models/store"
	"github.com/sm-tools/social-pulse/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func TestMetricsStore_AddAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	engagement := int64(99_830)
	rate := 0.0282
	records := []store.MetricsRecord{
		{Platform: "Instagram", Period: "2025", Followers: 303_000_000, Engagement: &engagement, Posts: 1_250},
		{Platform: "TikTok", Period: "2025", Followers: 4_900_000, Posts: 680, ProvidedRate: &rate},
		{Platform: "Pinterest", Period: "2024", Followers: 1_000_000},
	}
	require.NoError(t, f.store.Add(ctx, records))

	t.Run("all periods, insertion order", func(t *testing.T) {
		got, err := f.store.GetPlatformMetrics(ctx, "")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Instagram", got[0].Platform)
		require.NotNil(t, got[0].Engagement)
		assert.Equal(t, engagement, *got[0].Engagement)
		assert.Nil(t, got[1].Engagement)
		require.NotNil(t, got[1].ProvidedRate)
		assert.InDelta(t, rate, *got[1].ProvidedRate, 1e-9)
	})

	t.Run("filtered by period", func(t *testing.T) {
		got, err := f.store.GetPlatformMetrics(ctx, "2025")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "TikTok", got[1].Platform)
	})
}

func TestMetricsStore_Add_Empty(t *testing.T) {
	f := setupFixture(t)
	assert.NoError(t, f.store.Add(context.Background(), nil))
}

func TestMetricsStore_GetPlatformMetrics_QueryShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"platform", "period", "followers", "engagement", "posts", "provided_rate"}
	rows := sqlmock.NewRows(cols).
		AddRow("YouTube", "2025", int64(2_090_000), int64(4_038), int64(410), nil).
		AddRow("LinkedIn", "2025", int64(4_000_000), nil, int64(180), nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM platform_metrics")).
		WithArgs("2025").
		WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	got, err := s.GetPlatformMetrics(context.Background(), "2025")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Engagement)
	assert.Equal(t, int64(4_038), *got[0].Engagement)
	assert.Nil(t, got[1].Engagement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
