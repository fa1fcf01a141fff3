package models

import "time"

type Challenge struct {
	ID           int64                  `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Type         string                 `json:"type"`
	DurationDays int                    `json:"duration_days"`
	XPReward     int                    `json:"xp_reward"`
	StartDate    time.Time              `json:"start_date"`
	EndDate      time.Time              `json:"end_date"`
	IsActive     bool                   `json:"is_active"`
	Participants []ChallengeParticipant `json:"participants"`
	CreatedAt    time.Time              `json:"created_at"`
}

type ChallengeParticipant struct {
	ChallengeID int64     `json:"challenge_id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	JoinedAt    time.Time `json:"joined_at"`
}
