package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

const workoutColumns = `id, user_id, title, exercises, duration_minutes, calories_burned,
	   workout_type, difficulty, completed, completed_at, created_at`

func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	exercises, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	query := `
		INSERT INTO workouts (user_id, title, exercises, duration_minutes, calories_burned, workout_type, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, completed, created_at
	`
	return r.db.QueryRow(ctx, query,
		workout.UserID,
		workout.Title,
		exercises,
		workout.DurationMinutes,
		workout.CaloriesBurned,
		workout.WorkoutType,
		workout.Difficulty,
	).Scan(&workout.ID, &workout.Completed, &workout.CreatedAt)
}

func (r *WorkoutRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1 AND user_id = $2`
	return r.scanWorkout(r.db.QueryRow(ctx, query, id, userID))
}

func (r *WorkoutRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []models.Workout{}
	for rows.Next() {
		workout, err := r.scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *workout)
	}
	return workouts, rows.Err()
}

func (r *WorkoutRepository) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) error {
	query := `UPDATE workouts SET completed = TRUE, completed_at = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, completedAt, id)
	return err
}

func (r *WorkoutRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workouts`).Scan(&count)
	return count, err
}

func (r *WorkoutRepository) scanWorkout(row pgx.Row) (*models.Workout, error) {
	var workout models.Workout
	var exercises []byte
	err := row.Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Title,
		&exercises,
		&workout.DurationMinutes,
		&workout.CaloriesBurned,
		&workout.WorkoutType,
		&workout.Difficulty,
		&workout.Completed,
		&workout.CompletedAt,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(exercises, &workout.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	return &workout, nil
}
