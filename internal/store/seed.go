package store

import (
	"math/rand"
	"time"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

// Demo data for local runs, mirroring the product demo set. The "You"
// row is the reserved self key used by anonymous sessions.
func seedData(s *MemoryStore) {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	seedUsers := []model.User{
		{ID: 1, AccountID: "acc-alice", DisplayName: "Alice", TotalPoints: 2530, IsAdmin: true, AvatarURL: "https://i.pravatar.cc/100?img=5"},
		{ID: 2, AccountID: "You", DisplayName: "You", TotalPoints: 1250, AvatarURL: ""},
		{ID: 3, AccountID: "acc-bob", DisplayName: "Bob", TotalPoints: 1100, AvatarURL: "https://i.pravatar.cc/100?img=12"},
		{ID: 4, AccountID: "acc-charlie", DisplayName: "Charlie", TotalPoints: 980, AvatarURL: "https://i.pravatar.cc/100?img=13"},
		{ID: 5, AccountID: "acc-diana", DisplayName: "Diana", TotalPoints: 760, AvatarURL: "https://i.pravatar.cc/100?img=20"},
	}
	for _, u := range seedUsers {
		u.CreatedAt = now.AddDate(0, -3, 0)
		s.users[u.ID] = u
	}

	seedTeams := []struct {
		ref     model.TeamRef
		members []int
	}{
		{model.TeamRef{ID: 1, Name: "Team Alpha"}, []int{1, 2}},
		{model.TeamRef{ID: 2, Name: "Team Beta"}, []int{3, 4}},
		{model.TeamRef{ID: 3, Name: "Team Gamma"}, []int{5}},
		{model.TeamRef{ID: 4, Name: "Team Delta"}, nil},
		{model.TeamRef{ID: 5, Name: "Team Epsilon"}, nil},
	}
	for _, t := range seedTeams {
		t.ref.CreatedAt = now.AddDate(0, -3, 0)
		s.teams[t.ref.ID] = t.ref
		s.rosters[t.ref.ID] = t.members
	}

	// Two weeks of daily activity so the weekly view has history.
	today := calendar.FromTime(now)
	for offset := 0; offset < 14; offset++ {
		day := today.AddDays(-offset)
		var entries []model.PointEntry
		for _, u := range seedUsers {
			if rng.Intn(3) == 0 {
				continue
			}
			entries = append(entries, model.PointEntry{
				UserID:      u.ID,
				DisplayName: u.DisplayName,
				AvatarURL:   u.AvatarURL,
				Points:      10 + rng.Intn(120),
			})
		}
		s.dayPoints[day] = entries
	}
}
