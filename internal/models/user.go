package models

import "time"

type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Role            string     `json:"role"`
	XP              int        `json:"xp"`
	Streak          int        `json:"streak"`
	LastWorkoutDate *time.Time `json:"last_workout_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type LeaderboardEntry struct {
	UserID int64    `json:"user_id"`
	Name   string   `json:"name"`
	XP     int      `json:"xp"`
	Streak int      `json:"streak"`
	Badges []string `json:"badges"`
}
