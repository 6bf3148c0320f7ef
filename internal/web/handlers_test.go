package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamify-app/internal/calendar"
	"gamify-app/internal/leaderboard"
	"gamify-app/internal/model"
	"gamify-app/internal/rank"
)

type fakeStore struct {
	users   []model.User
	days    map[calendar.Date][]model.PointEntry
	teams   []model.TeamRef
	rosters map[int][]model.User
}

func (f *fakeStore) ListUsers(context.Context) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeStore) ListDayPoints(_ context.Context, day calendar.Date) ([]model.PointEntry, error) {
	return f.days[day], nil
}

func (f *fakeStore) ListTeams(context.Context) ([]model.TeamRef, error) {
	return f.teams, nil
}

func (f *fakeStore) ListTeamMembers(_ context.Context, teamID int) ([]model.User, error) {
	return f.rosters[teamID], nil
}

func testDay(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.Parse(s)
	require.NoError(t, err)
	return d
}

// newTestServer serves a small fixed world: Alice and Bob scored during
// the week of 2025-01-06, Charlie has not, and "today" is Friday the
// 10th.
func newTestServer(t *testing.T) (http.Handler, *leaderboard.Cache) {
	t.Helper()

	alice := model.User{ID: 1, AccountID: "acc-alice", DisplayName: "Alice", TotalPoints: 2530, IsAdmin: true}
	bob := model.User{ID: 2, AccountID: "acc-bob", DisplayName: "Bob", TotalPoints: 1100}
	charlie := model.User{ID: 3, AccountID: "acc-charlie", DisplayName: "Charlie", TotalPoints: 980}

	fs := &fakeStore{
		users: []model.User{alice, bob, charlie},
		days: map[calendar.Date][]model.PointEntry{
			testDay(t, "2025-01-06"): {
				{UserID: 1, DisplayName: "Alice", Points: 10},
				{UserID: 2, DisplayName: "Bob", Points: 7},
			},
			testDay(t, "2025-01-08"): {
				{UserID: 1, DisplayName: "Alice", Points: 5},
			},
			testDay(t, "2025-01-10"): {
				{UserID: 2, DisplayName: "Bob", Points: 3},
			},
		},
		teams: []model.TeamRef{
			{ID: 1, Name: "Team Alpha"},
			{ID: 2, Name: "Team Beta"},
		},
		rosters: map[int][]model.User{
			1: {alice},
			2: {bob, charlie},
		},
	}

	now := testDay(t, "2025-01-10").Time()
	agg, err := leaderboard.NewAggregator(fs, leaderboard.Options{Now: func() time.Time { return now }})
	require.NoError(t, err)
	table, err := rank.NewTable(rank.DefaultThresholds())
	require.NoError(t, err)

	cache := leaderboard.NewCache()
	srv := NewServer(fs, agg, cache, table)
	return WithIdentity(srv.Routes()), cache
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, _ := newTestServer(t)
	return h
}

func doGet(t *testing.T, h http.Handler, target, identity string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if identity != "" {
		req.Header.Set("X-Identity", identity)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, newTestHandler(t), "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDayLeaderboard(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/leaderboard?date=2025-01-06", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []DayEntryView
	decode(t, rec, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, DayEntryView{Rank: 1, UserID: 1, DisplayName: "Alice", Points: 10}, entries[0])
	assert.Equal(t, 2, entries[1].Rank)
}

func TestDayLeaderboardDefaultsToAggregatorClock(t *testing.T) {
	h := newTestHandler(t)

	// No date parameter; "today" is the injected 2025-01-10, not the wall
	// clock.
	rec := doGet(t, h, "/api/v1/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []DayEntryView
	decode(t, rec, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, DayEntryView{Rank: 1, UserID: 2, DisplayName: "Bob", Points: 3}, entries[0])
}

func TestDayLeaderboardBadDate(t *testing.T) {
	rec := doGet(t, newTestHandler(t), "/api/v1/leaderboard?date=06-01-2025", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeeklyLeaderboard(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/leaderboard/weekly?date=2025-01-08", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view WeeklyView
	decode(t, rec, &view)
	assert.Equal(t, "2025-W02", view.Week)
	assert.Equal(t, "2025-01-06", view.WeekStart)
	assert.Equal(t, "2025-01-10", view.WeekEnd)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, WeeklyEntryView{Rank: 1, UserID: 1, DisplayName: "Alice", WeeklyPoints: 15}, view.Entries[0])
	assert.Equal(t, WeeklyEntryView{Rank: 2, UserID: 2, DisplayName: "Bob", WeeklyPoints: 10}, view.Entries[1])
	assert.Nil(t, view.Self)
}

func TestWeeklyLeaderboardSelf(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/leaderboard/weekly?date=2025-01-08", "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	var view WeeklyView
	decode(t, rec, &view)
	require.NotNil(t, view.Self)
	assert.Equal(t, 1, view.Self.Rank)
	assert.Equal(t, "Alice", view.Self.DisplayName)
	assert.Equal(t, 15, view.Self.Points)
	assert.False(t, view.Self.Synthesized)
}

func TestWeeklyLeaderboardSynthesizedSelf(t *testing.T) {
	h := newTestHandler(t)

	// Charlie exists but has no activity this week.
	rec := doGet(t, h, "/api/v1/leaderboard/weekly?date=2025-01-08", "charlie")
	require.Equal(t, http.StatusOK, rec.Code)

	var view WeeklyView
	decode(t, rec, &view)
	require.NotNil(t, view.Self)
	assert.Equal(t, 3, view.Self.Rank)
	assert.Equal(t, "Charlie", view.Self.DisplayName)
	assert.Equal(t, 0, view.Self.Points)
	assert.True(t, view.Self.Synthesized)
}

func TestWeeklyLeaderboardUnknownIdentity(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/leaderboard/weekly?date=2025-01-08", "mallory")
	require.Equal(t, http.StatusOK, rec.Code)

	var view WeeklyView
	decode(t, rec, &view)
	assert.Nil(t, view.Self)
}

func TestWeeklyLeaderboardServedFromCache(t *testing.T) {
	h, cache := newTestServer(t)

	cached := []model.WeeklyEntry{{UserID: 9, DisplayName: "Cached", WeeklyPoints: 1}}
	cache.SetWeekly(testDay(t, "2025-01-06"), cached)

	rec := doGet(t, h, "/api/v1/leaderboard/weekly?date=2025-01-08", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view WeeklyView
	decode(t, rec, &view)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "Cached", view.Entries[0].DisplayName)
}

func TestWeeklyLeaderboardMissDoesNotFillCache(t *testing.T) {
	h, cache := newTestServer(t)

	rec := doGet(t, h, "/api/v1/leaderboard/weekly?date=2025-01-08", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Publishing is the refresher's job; a handler miss serves fresh
	// results without writing them back.
	_, ok := cache.Weekly(testDay(t, "2025-01-06"))
	assert.False(t, ok)
}

func TestWeeklyLeaderboardFutureWeek(t *testing.T) {
	rec := doGet(t, newTestHandler(t), "/api/v1/leaderboard/weekly?date=2025-02-10", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankedTeams(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/teams/ranked", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var teams []TeamView
	decode(t, rec, &teams)
	require.Len(t, teams, 2)
	assert.Equal(t, "Team Alpha", teams[0].Name)
	assert.Equal(t, 1, teams[0].Rank)
	assert.Equal(t, 2530, teams[0].TotalPoints)
	assert.Equal(t, "Team Beta", teams[1].Name)
	assert.Equal(t, 2080, teams[1].TotalPoints)
	require.Len(t, teams[1].Members, 2)
}

func TestRankedTeamsMissDoesNotFillCache(t *testing.T) {
	h, cache := newTestServer(t)

	rec := doGet(t, h, "/api/v1/teams/ranked", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := cache.Teams()
	assert.False(t, ok)
}

func TestRankedTeamsServedFromCache(t *testing.T) {
	h, cache := newTestServer(t)

	cache.SetTeams([]model.RankedTeam{{Team: model.Team{TeamRef: model.TeamRef{ID: 7, Name: "Cached"}}, Rank: 1}})

	rec := doGet(t, h, "/api/v1/teams/ranked", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var teams []TeamView
	decode(t, rec, &teams)
	require.Len(t, teams, 1)
	assert.Equal(t, "Cached", teams[0].Name)
}

func TestRanksTable(t *testing.T) {
	rec := doGet(t, newTestHandler(t), "/api/v1/ranks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var thresholds []ThresholdView
	decode(t, rec, &thresholds)
	require.Len(t, thresholds, 8)
	assert.Equal(t, ThresholdView{Tier: "Grandmaster", MinPoints: 5000}, thresholds[0])
	assert.Equal(t, ThresholdView{Tier: "Iron", MinPoints: 0}, thresholds[7])
}

func TestRanksLookup(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/ranks?points=1600", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view RankLookupView
	decode(t, rec, &view)
	assert.Equal(t, "Gold", view.Tier)
	require.NotNil(t, view.NextThreshold)
	assert.Equal(t, 2000, *view.NextThreshold)
	require.NotNil(t, view.PreviousThreshold)
	assert.Equal(t, 1500, *view.PreviousThreshold)

	rec = doGet(t, h, "/api/v1/ranks?points=9000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &view)
	assert.Equal(t, "Grandmaster", view.Tier)
	assert.Nil(t, view.NextThreshold)

	rec = doGet(t, h, "/api/v1/ranks?points=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelfRank(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/me/rank", "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	var view SelfRankView
	decode(t, rec, &view)
	assert.Equal(t, 1, view.Rank)
	assert.Equal(t, "Alice", view.DisplayName)
	assert.Equal(t, 2530, view.TotalPoints)
	assert.Equal(t, "Diamond", view.RankTier)
	assert.True(t, view.IsAdmin)
}

func TestSelfRankUnknown(t *testing.T) {
	h := newTestHandler(t)

	rec := doGet(t, h, "/api/v1/me/rank", "mallory")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Anonymous with no reserved demo row in the store.
	rec = doGet(t, h, "/api/v1/me/rank", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
