package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gamify-app/internal/leaderboard"
	"gamify-app/internal/rank"
	"gamify-app/internal/store"
)

type Server struct {
	store store.Store
	agg   *leaderboard.Aggregator
	cache *leaderboard.Cache
	ranks *rank.Table
}

func NewServer(store store.Store, agg *leaderboard.Aggregator, cache *leaderboard.Cache, ranks *rank.Table) *Server {
	return &Server{store: store, agg: agg, cache: cache, ranks: ranks}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leaderboard", s.handleDayLeaderboard)
		r.Get("/leaderboard/weekly", s.handleWeeklyLeaderboard)
		r.Get("/teams/ranked", s.handleRankedTeams)
		r.Get("/ranks", s.handleRanks)
		r.Get("/me/rank", s.handleSelfRank)
	})

	return r
}
