package leaderboard

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"gamify-app/internal/calendar"
)

// Refresher re-runs both aggregations on a fixed interval or on demand
// and publishes the results into a Cache. Triggering a new run cancels
// the one still in flight; a superseded run never writes the cache.
type Refresher struct {
	agg   *Aggregator
	cache *Cache

	mu     sync.Mutex
	cancel context.CancelFunc
	runID  string
}

func NewRefresher(agg *Aggregator, cache *Cache) *Refresher {
	return &Refresher{agg: agg, cache: cache}
}

// Trigger starts an aggregation run for the week containing ref,
// superseding any run still in flight.
func (r *Refresher) Trigger(ctx context.Context, ref calendar.Date) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	runID := uuid.NewString()
	r.cancel = cancel
	r.runID = runID
	r.mu.Unlock()

	go r.run(runCtx, runID, ref)
}

func (r *Refresher) run(ctx context.Context, runID string, ref calendar.Date) {
	weekStart, _ := r.agg.WeekRange(ref)

	entries, err := r.agg.AggregateWeek(ctx, ref)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("refresh %s: weekly aggregation: %v", runID, err)
		}
		return
	}
	teams, err := r.agg.AggregateTeams(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("refresh %s: team aggregation: %v", runID, err)
		}
		return
	}

	// The currency check and both writes stay under the mutex Trigger
	// updates runID with, so a run superseded at any point before here can
	// never publish, in whole or in part.
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runID != runID {
		// Superseded while finishing; drop the stale results.
		return
	}
	r.cache.SetWeekly(weekStart, entries)
	r.cache.SetTeams(teams)
}

// Start triggers a run immediately and then on every interval tick until
// ctx is done.
func (r *Refresher) Start(ctx context.Context, interval time.Duration) {
	r.Trigger(ctx, r.agg.Today())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Trigger(ctx, r.agg.Today())
		case <-ctx.Done():
			return
		}
	}
}
