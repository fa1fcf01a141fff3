package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type ChallengeRepository struct {
	db DBTX
}

func NewChallengeRepository(db DBTX) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

const challengeColumns = `id, title, description, type, duration_days, xp_reward,
	   start_date, end_date, is_active, created_at`

type CreateChallengeInput struct {
	Title        string
	Description  string
	Type         string
	DurationDays int
	XPReward     int
	EndDate      time.Time
}

func (r *ChallengeRepository) Create(ctx context.Context, input CreateChallengeInput) (*models.Challenge, error) {
	query := `
		INSERT INTO challenges (title, description, type, duration_days, xp_reward, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + challengeColumns
	return r.scanChallenge(r.db.QueryRow(ctx, query,
		input.Title,
		input.Description,
		input.Type,
		input.DurationDays,
		input.XPReward,
		input.EndDate,
	))
}

func (r *ChallengeRepository) GetByID(ctx context.Context, id int64) (*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	return r.scanChallenge(r.db.QueryRow(ctx, query, id))
}

func (r *ChallengeRepository) ListActive(ctx context.Context) ([]models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE is_active ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	challenges := []models.Challenge{}
	for rows.Next() {
		challenge, err := r.scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *challenge)
	}
	return challenges, rows.Err()
}

func (r *ChallengeRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM challenges WHERE is_active`).Scan(&count)
	return count, err
}

// Join adds the user as a participant. Returns false when the user already
// participates.
func (r *ChallengeRepository) Join(ctx context.Context, challengeID, userID int64) (bool, error) {
	query := `
		INSERT INTO challenge_participants (challenge_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (challenge_id, user_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, challengeID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ChallengeRepository) GetParticipantForUpdate(ctx context.Context, challengeID, userID int64) (*models.ChallengeParticipant, error) {
	query := `
		SELECT challenge_id, user_id, progress, completed, joined_at
		FROM challenge_participants
		WHERE challenge_id = $1 AND user_id = $2
		FOR UPDATE
	`
	var p models.ChallengeParticipant
	err := r.db.QueryRow(ctx, query, challengeID, userID).
		Scan(&p.ChallengeID, &p.UserID, &p.Progress, &p.Completed, &p.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ChallengeRepository) UpdateParticipant(ctx context.Context, challengeID, userID int64, progress int, completed bool) error {
	query := `
		UPDATE challenge_participants
		SET progress = $1, completed = $2
		WHERE challenge_id = $3 AND user_id = $4
	`
	_, err := r.db.Exec(ctx, query, progress, completed, challengeID, userID)
	return err
}

func (r *ChallengeRepository) ListParticipants(ctx context.Context, challengeID int64) ([]models.ChallengeParticipant, error) {
	query := `
		SELECT p.challenge_id, p.user_id, u.name, p.progress, p.completed, p.joined_at
		FROM challenge_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.challenge_id = $1
		ORDER BY p.joined_at
	`
	rows, err := r.db.Query(ctx, query, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.ChallengeParticipant{}
	for rows.Next() {
		var p models.ChallengeParticipant
		if err := rows.Scan(&p.ChallengeID, &p.UserID, &p.UserName, &p.Progress, &p.Completed, &p.JoinedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *ChallengeRepository) scanChallenge(row pgx.Row) (*models.Challenge, error) {
	var challenge models.Challenge
	err := row.Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Type,
		&challenge.DurationDays,
		&challenge.XPReward,
		&challenge.StartDate,
		&challenge.EndDate,
		&challenge.IsActive,
		&challenge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}
