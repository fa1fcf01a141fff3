package models

import "time"

type ProgressEntry struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	WeightKG       *float64           `json:"weight_kg"`
	BodyFat        *float64           `json:"body_fat"`
	MuscleMass     *float64           `json:"muscle_mass"`
	Measurements   map[string]float64 `json:"measurements,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
	BeforeImageURL *string            `json:"before_image_url,omitempty"`
	AfterImageURL  *string            `json:"after_image_url,omitempty"`
	RecordedAt     time.Time          `json:"recorded_at"`
}

type ProgressStats struct {
	WeightChange float64           `json:"weight_change"`
	TotalEntries int               `json:"total_entries"`
	FirstEntry   *ProgressSnapshot `json:"first_entry"`
	LatestEntry  *ProgressSnapshot `json:"latest_entry"`
}

type ProgressSnapshot struct {
	Date     time.Time `json:"date"`
	WeightKG *float64  `json:"weight_kg"`
}
