package leaderboard

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

// WeekRange returns the ISO week window for ref with the end clamped to
// today, so an ongoing week only covers days that have occurred.
func (a *Aggregator) WeekRange(ref calendar.Date) (start, end calendar.Date) {
	start = calendar.StartOfISOWeek(ref)
	end = calendar.ClampEnd(calendar.EndOfISOWeek(ref), a.Today())
	return start, end
}

// AggregateWeek sums day-granular points across the clamped ISO week
// containing ref and returns entries sorted by weekly points descending.
// One failed day fetch fails the whole aggregation; the remaining
// fetches are cancelled.
func (a *Aggregator) AggregateWeek(ctx context.Context, ref calendar.Date) ([]model.WeeklyEntry, error) {
	start, end := a.WeekRange(ref)
	days := calendar.EnumerateDays(start, end)

	lists := make([][]model.PointEntry, len(days))
	g, gctx := errgroup.WithContext(ctx)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			return a.dayLimit.Do(gctx, func(ctx context.Context) error {
				entries, err := a.source.ListDayPoints(ctx, day)
				if err != nil {
					return fmt.Errorf("day %s: %w", day, err)
				}
				lists[i] = entries
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[int]*model.WeeklyEntry)
	for _, list := range lists {
		for _, e := range list {
			if entry, ok := merged[e.UserID]; ok {
				entry.WeeklyPoints += e.Points
				continue
			}
			merged[e.UserID] = &model.WeeklyEntry{
				UserID:       e.UserID,
				DisplayName:  e.DisplayName,
				AvatarURL:    e.AvatarURL,
				WeeklyPoints: e.Points,
			}
		}
	}

	out := make([]model.WeeklyEntry, 0, len(merged))
	for _, entry := range merged {
		out = append(out, *entry)
	}
	// Ties break on user ID so unchanged input keeps an identical order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeeklyPoints == out[j].WeeklyPoints {
			return out[i].UserID < out[j].UserID
		}
		return out[i].WeeklyPoints > out[j].WeeklyPoints
	})
	return out, nil
}
