package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

type CreateProgressInput struct {
	WeightKG       *float64
	BodyFat        *float64
	MuscleMass     *float64
	Measurements   map[string]float64
	Notes          *string
	BeforeImageURL *string
	AfterImageURL  *string
}

func (r *ProgressRepository) Create(ctx context.Context, userID int64, input CreateProgressInput) (*models.ProgressEntry, error) {
	var measurements []byte
	if input.Measurements != nil {
		var err error
		measurements, err = json.Marshal(input.Measurements)
		if err != nil {
			return nil, fmt.Errorf("marshal measurements: %w", err)
		}
	}

	query := `
		INSERT INTO progress_entries (user_id, weight_kg, body_fat, muscle_mass, measurements, notes, before_image_url, after_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, weight_kg, body_fat, muscle_mass, measurements, notes, before_image_url, after_image_url, recorded_at
	`
	return r.scanEntry(r.db.QueryRow(ctx, query,
		userID,
		input.WeightKG,
		input.BodyFat,
		input.MuscleMass,
		measurements,
		input.Notes,
		input.BeforeImageURL,
		input.AfterImageURL,
	))
}

// ListByUserID returns entries newest first.
func (r *ProgressRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]models.ProgressEntry, error) {
	query := `
		SELECT id, user_id, weight_kg, body_fat, muscle_mass, measurements, notes, before_image_url, after_image_url, recorded_at
		FROM progress_entries
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ProgressEntry{}
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *ProgressRepository) scanEntry(row pgx.Row) (*models.ProgressEntry, error) {
	var entry models.ProgressEntry
	var measurements []byte
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.WeightKG,
		&entry.BodyFat,
		&entry.MuscleMass,
		&measurements,
		&entry.Notes,
		&entry.BeforeImageURL,
		&entry.AfterImageURL,
		&entry.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(measurements) > 0 {
		if err := json.Unmarshal(measurements, &entry.Measurements); err != nil {
			return nil, fmt.Errorf("unmarshal measurements: %w", err)
		}
	}
	return &entry, nil
}
