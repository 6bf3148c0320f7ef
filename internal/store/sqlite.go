package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

type SQLiteStore struct {
	db *sql.DB
}

type SQLiteOptions struct {
	MigrationsDir string
}

func NewSQLiteStore(path string, opts SQLiteOptions) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	migrationsDir := strings.TrimSpace(opts.MigrationsDir)
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := applyMigrations(db, migrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, display_name, COALESCE(avatar_url, ''), total_points, is_admin, created_at
		FROM users
		ORDER BY total_points DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.AccountID, &u.DisplayName, &u.AvatarURL, &u.TotalPoints, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) ListDayPoints(ctx context.Context, day calendar.Date) ([]model.PointEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.display_name, COALESCE(u.avatar_url, ''), SUM(a.points_awarded) AS day_points
		FROM activities a
		JOIN users u ON u.id = a.user_id
		WHERE DATE(a.created_at) = ?
		GROUP BY u.id, u.display_name, u.avatar_url
		ORDER BY day_points DESC, u.id ASC`, day.String())
	if err != nil {
		return nil, fmt.Errorf("list day points: %w", err)
	}
	defer rows.Close()

	entries := []model.PointEntry{}
	for rows.Next() {
		var e model.PointEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.AvatarURL, &e.Points); err != nil {
			return nil, fmt.Errorf("scan day points: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) ListTeams(ctx context.Context) ([]model.TeamRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM teams ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := []model.TeamRef{}
	for rows.Next() {
		var t model.TeamRef
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *SQLiteStore) ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.account_id, u.display_name, COALESCE(u.avatar_url, ''), u.total_points, u.is_admin, u.created_at
		FROM users u
		JOIN user_teams ut ON ut.user_id = u.id
		WHERE ut.team_id = ?
		ORDER BY u.total_points DESC, u.id ASC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	members := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.AccountID, &u.DisplayName, &u.AvatarURL, &u.TotalPoints, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, u)
	}
	return members, rows.Err()
}
