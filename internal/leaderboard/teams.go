package leaderboard

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"gamify-app/internal/model"
)

// AggregateTeams fetches every team's roster, sums member points and
// returns teams sorted by total descending with a dense 1-based rank.
// A single failed roster fetch fails the whole aggregation.
func (a *Aggregator) AggregateTeams(ctx context.Context) ([]model.RankedTeam, error) {
	refs, err := a.source.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("team list: %w", err)
	}

	teams := make([]model.Team, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			return a.teamLimit.Do(gctx, func(ctx context.Context) error {
				members, err := a.source.ListTeamMembers(ctx, ref.ID)
				if err != nil {
					return fmt.Errorf("team %d roster: %w", ref.ID, err)
				}
				total := 0
				for _, m := range members {
					total += m.TotalPoints
				}
				teams[i] = model.Team{TeamRef: ref, Members: members, TotalPoints: total}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Empty teams total 0 and settle last among the zeros by team ID.
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].TotalPoints == teams[j].TotalPoints {
			return teams[i].ID < teams[j].ID
		}
		return teams[i].TotalPoints > teams[j].TotalPoints
	})

	ranked := make([]model.RankedTeam, len(teams))
	for i, t := range teams {
		ranked[i] = model.RankedTeam{Team: t, Rank: i + 1}
	}
	return ranked, nil
}
