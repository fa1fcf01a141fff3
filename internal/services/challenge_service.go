package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrChallengeInactive = errors.New("challenge is not active")
	ErrAlreadyJoined     = errors.New("already participating in this challenge")
	ErrNotParticipating  = errors.New("not participating in this challenge")
)

var allowedChallengeTypes = map[string]struct{}{
	"streak":    {},
	"workout":   {},
	"nutrition": {},
	"community": {},
}

type ChallengeService struct {
	db            *pgxpool.Pool
	challengeRepo *repository.ChallengeRepository
}

func NewChallengeService(db *pgxpool.Pool, challengeRepo *repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{db: db, challengeRepo: challengeRepo}
}

func (s *ChallengeService) ListActive(ctx context.Context) ([]models.Challenge, error) {
	challenges, err := s.challengeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range challenges {
		participants, err := s.challengeRepo.ListParticipants(ctx, challenges[i].ID)
		if err != nil {
			return nil, err
		}
		challenges[i].Participants = participants
	}
	return challenges, nil
}

func (s *ChallengeService) Join(ctx context.Context, challengeID, userID int64) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.IsActive {
		return nil, ErrChallengeInactive
	}

	joined, err := s.challengeRepo.Join(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}
	if !joined {
		return nil, ErrAlreadyJoined
	}

	challenge.Participants, err = s.challengeRepo.ListParticipants(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	return challenge, nil
}

// UpdateProgress sets (or bumps) the participant's progress counter. When
// progress first reaches the challenge duration the participant is marked
// completed and the challenge's XP reward is credited, exactly once, via an
// atomic increment.
func (s *ChallengeService) UpdateProgress(ctx context.Context, challengeID, userID int64, progress *int) (*models.ChallengeParticipant, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txChallengeRepo := repository.NewChallengeRepository(tx)
	txUserRepo := repository.NewUserRepository(tx)

	participant, err := txChallengeRepo.GetParticipantForUpdate(ctx, challengeID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}

	if progress != nil {
		participant.Progress = *progress
	} else {
		participant.Progress++
	}

	if participant.Progress >= challenge.DurationDays && !participant.Completed {
		participant.Completed = true
		if err := txUserRepo.IncrementXP(ctx, userID, challenge.XPReward); err != nil {
			return nil, err
		}
	}

	if err := txChallengeRepo.UpdateParticipant(ctx, challengeID, userID, participant.Progress, participant.Completed); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return participant, nil
}

type CreateChallengeInput struct {
	Title        string
	Description  string
	Type         string
	DurationDays int
	XPReward     int
	EndDate      time.Time
}

func (s *ChallengeService) Create(ctx context.Context, input CreateChallengeInput) (*models.Challenge, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" || input.DurationDays <= 0 {
		return nil, ErrInvalidInput
	}
	if _, ok := allowedChallengeTypes[input.Type]; !ok {
		return nil, ErrInvalidInput
	}
	if input.EndDate.Before(time.Now()) {
		return nil, ErrInvalidInput
	}
	if input.XPReward <= 0 {
		input.XPReward = 100
	}

	return s.challengeRepo.Create(ctx, repository.CreateChallengeInput{
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		DurationDays: input.DurationDays,
		XPReward:     input.XPReward,
		EndDate:      input.EndDate,
	})
}
