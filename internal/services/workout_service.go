package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

const (
	// Each exercise is budgeted four minutes of the available time.
	minutesPerExercise = 4
	// Estimated seconds of work per set, added to the prescribed rest.
	workSecondsPerSet = 30
	// Rough burn estimate applied to the total duration.
	caloriesPerMinute = 8

	defaultWorkoutMinutes = 30
	defaultVenue          = "home"
	workoutListLimit      = 50
)

type workoutStore interface {
	Create(ctx context.Context, workout *models.Workout) error
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.Workout, error)
}

type WorkoutService struct {
	profileRepo profileReader
	userRepo    userReader
	workoutRepo workoutStore
	now         func() time.Time
}

// NewWorkoutService builds the service. now is injectable for tests; pass
// nil to use the wall clock.
func NewWorkoutService(profileRepo profileReader, userRepo userReader, workoutRepo workoutStore, now func() time.Time) *WorkoutService {
	if now == nil {
		now = time.Now
	}
	return &WorkoutService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		now:         now,
	}
}

type GenerateWorkoutInput struct {
	WorkoutType   string
	TimeAvailable int
}

// Generate assembles a workout for the user's effective difficulty and venue
// and persists it as incomplete. A very short time budget can legitimately
// produce a workout with no exercises; that is accepted rather than rejected.
func (s *WorkoutService) Generate(ctx context.Context, userID int64, input GenerateWorkoutInput) (*models.Workout, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	venue := input.WorkoutType
	if venue == "" {
		venue = defaultVenue
	}

	minutes := input.TimeAvailable
	if minutes <= 0 {
		minutes = profile.DailyWorkoutTime
	}
	if minutes <= 0 {
		minutes = defaultWorkoutMinutes
	}

	difficulty := effectiveDifficulty(profile.FitnessLevel, weeksActive(user.CreatedAt, s.now()))
	selected := selectExercises(exercisesFor(difficulty, venue), minutes)
	duration := estimatedDurationMinutes(selected)

	workout := &models.Workout{
		UserID:          userID,
		Title:           upperFirst(venue) + " Workout - " + upperFirst(difficulty),
		Exercises:       selected,
		DurationMinutes: duration,
		CaloriesBurned:  duration * caloriesPerMinute,
		WorkoutType:     venue,
		Difficulty:      difficulty,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) ListWorkouts(ctx context.Context, userID int64) ([]models.Workout, error) {
	return s.workoutRepo.ListByUserID(ctx, userID, workoutListLimit)
}

// effectiveDifficulty maps the stored fitness level and account tenure to a
// difficulty tier. First matching rule wins; the result only ever upgrades
// as tenure grows, and an advanced user stays advanced.
func effectiveDifficulty(fitnessLevel string, weeksActive int) string {
	if fitnessLevel == "" {
		fitnessLevel = "beginner"
	}
	if weeksActive < 2 {
		return fitnessLevel
	}
	if weeksActive < 4 && fitnessLevel == "beginner" {
		return "intermediate"
	}
	if weeksActive < 8 && fitnessLevel == "intermediate" {
		return "advanced"
	}
	if fitnessLevel == "beginner" {
		return "intermediate"
	}
	return "advanced"
}

func weeksActive(createdAt, now time.Time) int {
	weeks := int(now.Sub(createdAt).Hours() / (24 * 7))
	if weeks < 0 {
		return 0
	}
	return weeks
}

// selectExercises takes the catalog prefix that fits the time budget at four
// minutes per exercise.
func selectExercises(catalog []models.Exercise, availableMinutes int) []models.Exercise {
	count := availableMinutes / minutesPerExercise
	if count < 0 {
		count = 0
	}
	if count > len(catalog) {
		count = len(catalog)
	}
	return append([]models.Exercise{}, catalog[:count]...)
}

// estimatedDurationMinutes sums sets*(rest+work) seconds across the selection
// and rounds to the nearest minute.
func estimatedDurationMinutes(exercises []models.Exercise) int {
	totalSeconds := 0
	for _, exercise := range exercises {
		totalSeconds += exercise.Sets * (exercise.RestSeconds + workSecondsPerSet)
	}
	return int(math.Round(float64(totalSeconds) / 60))
}

func upperFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
