package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"gamify-app/internal/calendar"
	"gamify-app/internal/leaderboard"
	"gamify-app/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// dateParam defaults to the aggregator's clock so "today" means the same
// thing here as in WeekRange.
func (s *Server) dateParam(r *http.Request) (calendar.Date, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.agg.Today(), nil
	}
	return calendar.Parse(raw)
}

func (s *Server) handleDayLeaderboard(w http.ResponseWriter, r *http.Request) {
	day, err := s.dateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	entries, err := s.store.ListDayPoints(r.Context(), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, dayEntryViews(entries))
}

func (s *Server) handleWeeklyLeaderboard(w http.ResponseWriter, r *http.Request) {
	ref, err := s.dateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	weekStart, weekEnd := s.agg.WeekRange(ref)
	if weekEnd.Before(weekStart) {
		writeError(w, http.StatusBadRequest, "week has not started yet")
		return
	}

	// Cache writes belong to the refresher's guarded publish path. A miss
	// is served fresh without caching, so a slow handler aggregation can
	// never clobber a newer refresher result.
	entries, ok := s.cache.Weekly(weekStart)
	if !ok {
		entries, err = s.agg.AggregateWeek(r.Context(), ref)
		if err != nil {
			writeError(w, http.StatusBadGateway, "weekly aggregation failed")
			return
		}
	}

	view := WeeklyView{
		Week:      calendar.ISOWeekString(weekStart),
		WeekStart: weekStart.String(),
		WeekEnd:   weekEnd.String(),
		Entries:   weeklyEntryViews(entries),
		Self:      s.weeklySelf(r, entries),
	}
	writeJSON(w, http.StatusOK, view)
}

// weeklySelf marks the caller's row in the weekly list. A signed-in user
// with no activity this week gets a synthesized zero-point placeholder,
// flagged so the UI can render it apart from real rows.
func (s *Server) weeklySelf(r *http.Request, entries []model.WeeklyEntry) *SelfView {
	identity := IdentityFrom(r.Context())

	if self, ok := leaderboard.ResolveSelf(entries, identity); ok {
		row := entries[self.Index]
		return &SelfView{Rank: self.Rank, DisplayName: row.DisplayName, Points: row.WeeklyPoints}
	}
	if identity == "" {
		return nil
	}
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("weekly self lookup: %v", err)
		return nil
	}
	known, ok := leaderboard.ResolveSelf(users, identity)
	if !ok {
		return nil
	}
	self := leaderboard.SynthesizeSelf(entries, 0)
	return &SelfView{
		Rank:        self.Rank,
		DisplayName: users[known.Index].DisplayName,
		Points:      0,
		Synthesized: true,
	}
}

func (s *Server) handleRankedTeams(w http.ResponseWriter, r *http.Request) {
	teams, ok := s.cache.Teams()
	if !ok {
		var err error
		teams, err = s.agg.AggregateTeams(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "team aggregation failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, teamViews(teams))
}

func (s *Server) handleRanks(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("points")
	if raw == "" {
		thresholds := s.ranks.Thresholds()
		views := make([]ThresholdView, len(thresholds))
		for i, th := range thresholds {
			views[i] = ThresholdView{Tier: th.Tier, MinPoints: th.MinPoints}
		}
		writeJSON(w, http.StatusOK, views)
		return
	}

	points, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid points")
		return
	}
	view := RankLookupView{Points: points, Tier: s.ranks.ResolveTier(points)}
	if next, ok := s.ranks.NextThreshold(points); ok {
		view.NextThreshold = &next
	}
	if prev, ok := s.ranks.PreviousThreshold(points); ok {
		view.PreviousThreshold = &prev
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSelfRank(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load leaderboard")
		return
	}
	self, ok := leaderboard.ResolveSelf(users, IdentityFrom(r.Context()))
	if !ok {
		writeError(w, http.StatusNotFound, "no leaderboard row for this identity")
		return
	}
	u := users[self.Index]
	writeJSON(w, http.StatusOK, SelfRankView{
		Rank:        self.Rank,
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		TotalPoints: u.TotalPoints,
		RankTier:    s.ranks.ResolveTier(u.TotalPoints),
		IsAdmin:     u.IsAdmin,
	})
}
