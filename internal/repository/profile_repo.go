package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, age, height_cm, weight_kg, gender, fitness_goal,
	   daily_workout_time, equipment, food_preference, fitness_level, created_at, updated_at`

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

type UpsertProfileInput struct {
	Age              *int
	HeightCM         *float64
	WeightKG         *float64
	Gender           *string
	FitnessGoal      *string
	DailyWorkoutTime *int
	Equipment        *[]string
	FoodPreference   *string
	FitnessLevel     *string
}

// Upsert creates the profile on first save and updates provided fields in
// place afterwards. Omitted fields keep their stored value on update and
// fall back to the schema defaults on insert.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, input UpsertProfileInput) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, age, height_cm, weight_kg, gender, fitness_goal,
							  daily_workout_time, equipment, food_preference, fitness_level)
		VALUES ($1, $2, $3, $4,
				COALESCE($5, 'prefer-not-to-say'),
				COALESCE($6, 'general-fitness'),
				COALESCE($7, 30),
				COALESCE($8, '{bodyweight}'),
				COALESCE($9, 'no-preference'),
				COALESCE($10, 'beginner'))
		ON CONFLICT (user_id) DO UPDATE SET
			age = COALESCE($2, profiles.age),
			height_cm = COALESCE($3, profiles.height_cm),
			weight_kg = COALESCE($4, profiles.weight_kg),
			gender = COALESCE($5, profiles.gender),
			fitness_goal = COALESCE($6, profiles.fitness_goal),
			daily_workout_time = COALESCE($7, profiles.daily_workout_time),
			equipment = COALESCE($8, profiles.equipment),
			food_preference = COALESCE($9, profiles.food_preference),
			fitness_level = COALESCE($10, profiles.fitness_level),
			updated_at = NOW()
		RETURNING ` + profileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query,
		userID,
		input.Age,
		input.HeightCM,
		input.WeightKG,
		input.Gender,
		input.FitnessGoal,
		input.DailyWorkoutTime,
		input.Equipment,
		input.FoodPreference,
		input.FitnessLevel,
	))
}

func (r *ProfileRepository) scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.Gender,
		&profile.FitnessGoal,
		&profile.DailyWorkoutTime,
		&profile.Equipment,
		&profile.FoodPreference,
		&profile.FitnessLevel,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
