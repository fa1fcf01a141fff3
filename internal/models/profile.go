package models

import "time"

type Profile struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Age              *int      `json:"age"`
	HeightCM         *float64  `json:"height_cm"`
	WeightKG         *float64  `json:"weight_kg"`
	Gender           string    `json:"gender"`
	FitnessGoal      string    `json:"fitness_goal"`
	DailyWorkoutTime int       `json:"daily_workout_time"`
	Equipment        []string  `json:"equipment"`
	FoodPreference   string    `json:"food_preference"`
	FitnessLevel     string    `json:"fitness_level"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
