package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/repository"
)

var ErrAlreadyCompleted = errors.New("workout already completed")

// XP awarded per minute of completed workout.
const xpPerMinute = 2

const (
	badgeWeekStreak  = "7-day-streak"
	badgeMonthStreak = "30-day-streak"
)

type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type GamificationService struct {
	db *pgxpool.Pool
}

func NewGamificationService(db *pgxpool.Pool) *GamificationService {
	return &GamificationService{db: db}
}

type CompletionResult struct {
	Workout   *models.Workout
	XPGained  int
	Streak    int
	NewBadges []string
}

// CompleteWorkout marks the workout done and applies the XP, streak and
// badge updates in one transaction. The user row is locked for the duration
// so two concurrent completions serialize instead of overwriting each
// other's gains.
func (s *GamificationService) CompleteWorkout(ctx context.Context, userID, workoutID int64) (*CompletionResult, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	userRepo := repository.NewUserRepository(tx)
	workoutRepo := repository.NewWorkoutRepository(tx)

	user, err := userRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	workout, err := workoutRepo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if workout.Completed {
		return nil, ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	if err := workoutRepo.MarkCompleted(ctx, workout.ID, now); err != nil {
		return nil, err
	}

	today := utcDay(now)
	xpGained := workout.DurationMinutes * xpPerMinute
	streak, changed := nextStreak(user.LastWorkoutDate, user.Streak, today)

	newBadges := []string{}
	if changed {
		for _, badge := range badgesAt(streak) {
			awarded, err := userRepo.AwardBadge(ctx, userID, badge)
			if err != nil {
				return nil, err
			}
			if awarded {
				newBadges = append(newBadges, badge)
			}
		}
	}

	if err := userRepo.UpdateGamification(ctx, userID, user.XP+xpGained, streak, today); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	completedAt := now
	workout.Completed = true
	workout.CompletedAt = &completedAt

	return &CompletionResult{
		Workout:   workout,
		XPGained:  xpGained,
		Streak:    streak,
		NewBadges: newBadges,
	}, nil
}

// nextStreak evaluates streak continuity at UTC day granularity. The first
// qualifying completion of a day extends the streak when the previous
// workout was exactly yesterday and resets it to 1 otherwise; later
// completions on the same day leave it untouched.
func nextStreak(lastWorkoutDate *time.Time, current int, today time.Time) (streak int, changed bool) {
	if lastWorkoutDate != nil && !utcDay(*lastWorkoutDate).Before(today) {
		return current, false
	}
	if lastWorkoutDate != nil && utcDay(*lastWorkoutDate).Equal(today.AddDate(0, 0, -1)) {
		return current + 1, true
	}
	return 1, true
}

// badgesAt returns the badges earned at the instant the streak reaches this
// exact value.
func badgesAt(streak int) []string {
	switch streak {
	case 7:
		return []string{badgeWeekStreak}
	case 30:
		return []string{badgeMonthStreak}
	default:
		return nil
	}
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
