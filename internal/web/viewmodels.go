package web

import "gamify-app/internal/model"

type DayEntryView struct {
	Rank        int    `json:"rank"`
	UserID      int    `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Points      int    `json:"points"`
}

type WeeklyEntryView struct {
	Rank         int    `json:"rank"`
	UserID       int    `json:"userId"`
	DisplayName  string `json:"displayName"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	WeeklyPoints int    `json:"weeklyPoints"`
}

type SelfView struct {
	Rank        int    `json:"rank"`
	DisplayName string `json:"displayName"`
	Points      int    `json:"points"`
	Synthesized bool   `json:"synthesized"`
}

type WeeklyView struct {
	Week      string            `json:"week"`
	WeekStart string            `json:"weekStart"`
	WeekEnd   string            `json:"weekEnd"`
	Entries   []WeeklyEntryView `json:"entries"`
	Self      *SelfView         `json:"self,omitempty"`
}

type TeamMemberView struct {
	UserID      int    `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	TotalPoints int    `json:"totalPoints"`
}

type TeamView struct {
	Rank        int              `json:"rank"`
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	TotalPoints int              `json:"totalPoints"`
	Members     []TeamMemberView `json:"members"`
}

type ThresholdView struct {
	Tier      string `json:"tier"`
	MinPoints int    `json:"minPoints"`
}

type RankLookupView struct {
	Points            int    `json:"points"`
	Tier              string `json:"tier"`
	NextThreshold     *int   `json:"nextThreshold"`
	PreviousThreshold *int   `json:"previousThreshold"`
}

type SelfRankView struct {
	Rank        int    `json:"rank"`
	UserID      int    `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	TotalPoints int    `json:"totalPoints"`
	RankTier    string `json:"rankTier"`
	IsAdmin     bool   `json:"isAdmin"`
}

func dayEntryViews(entries []model.PointEntry) []DayEntryView {
	views := make([]DayEntryView, len(entries))
	for i, e := range entries {
		views[i] = DayEntryView{
			Rank:        i + 1,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			AvatarURL:   e.AvatarURL,
			Points:      e.Points,
		}
	}
	return views
}

func weeklyEntryViews(entries []model.WeeklyEntry) []WeeklyEntryView {
	views := make([]WeeklyEntryView, len(entries))
	for i, e := range entries {
		views[i] = WeeklyEntryView{
			Rank:         i + 1,
			UserID:       e.UserID,
			DisplayName:  e.DisplayName,
			AvatarURL:    e.AvatarURL,
			WeeklyPoints: e.WeeklyPoints,
		}
	}
	return views
}

func teamViews(teams []model.RankedTeam) []TeamView {
	views := make([]TeamView, len(teams))
	for i, t := range teams {
		members := make([]TeamMemberView, len(t.Members))
		for j, m := range t.Members {
			members[j] = TeamMemberView{
				UserID:      m.ID,
				DisplayName: m.DisplayName,
				AvatarURL:   m.AvatarURL,
				TotalPoints: m.TotalPoints,
			}
		}
		views[i] = TeamView{
			Rank:        t.Rank,
			ID:          t.ID,
			Name:        t.Name,
			TotalPoints: t.TotalPoints,
			Members:     members,
		}
	}
	return views
}
