package model

import "time"

type User struct {
	ID          int
	AccountID   string
	DisplayName string
	AvatarURL   string
	TotalPoints int
	IsAdmin     bool
	CreatedAt   time.Time
}

// PointEntry is one user's point total for a single calendar day.
type PointEntry struct {
	UserID      int
	DisplayName string
	AvatarURL   string
	Points      int
}

// WeeklyEntry is the per-user sum of day entries inside one ISO week.
type WeeklyEntry struct {
	UserID       int
	DisplayName  string
	AvatarURL    string
	WeeklyPoints int
}

type TeamRef struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

type Team struct {
	TeamRef
	Members     []User
	TotalPoints int
}

type RankedTeam struct {
	Team
	Rank int
}

func (u User) RankKey() string  { return u.AccountID }
func (u User) RankName() string { return u.DisplayName }
func (u User) RankPoints() int  { return u.TotalPoints }

// Aggregated rows carry no account identity; demo rows use the reserved
// self key as their display name, so the name doubles as the key.
func (e WeeklyEntry) RankKey() string  { return e.DisplayName }
func (e WeeklyEntry) RankName() string { return e.DisplayName }
func (e WeeklyEntry) RankPoints() int  { return e.WeeklyPoints }
