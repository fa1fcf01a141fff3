package services

import (
	"context"
	"testing"
	"time"

	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type stubUserReader struct {
	user *models.User
}

func (s *stubUserReader) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return s.user, nil
}

type stubWorkoutStore struct {
	created *models.Workout
	listed  []models.Workout
}

func (s *stubWorkoutStore) Create(_ context.Context, workout *models.Workout) error {
	workout.ID = 42
	s.created = workout
	return nil
}

func (s *stubWorkoutStore) ListByUserID(_ context.Context, _ int64, _ int) ([]models.Workout, error) {
	return s.listed, nil
}

func workoutFixture(fitnessLevel string, weeksAgo int) (*stubProfileReader, *stubUserReader, *stubWorkoutStore, func() time.Time) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	profile := buildProfile(25, 175, 70, "male", "general-fitness", "vegetarian")
	profile.FitnessLevel = fitnessLevel
	profile.DailyWorkoutTime = 30
	user := &models.User{ID: 1, CreatedAt: now.AddDate(0, 0, -7*weeksAgo)}
	return &stubProfileReader{profile: profile},
		&stubUserReader{user: user},
		&stubWorkoutStore{},
		func() time.Time { return now }
}

func TestGenerateBuildsAndPersistsWorkout(t *testing.T) {
	profiles, users, store, now := workoutFixture("beginner", 0)
	service := NewWorkoutService(profiles, users, store, now)

	workout, err := service.Generate(context.Background(), 1, GenerateWorkoutInput{
		WorkoutType:   "home",
		TimeAvailable: 16,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if workout.Title != "Home Workout - Beginner" {
		t.Fatalf("unexpected title %q", workout.Title)
	}
	if got := len(workout.Exercises); got != 4 {
		t.Fatalf("expected 4 exercises for 16 minutes, got %d", got)
	}
	if workout.Exercises[0].Name != "Push-ups" || workout.Exercises[3].Name != "Jumping Jacks" {
		t.Fatalf("expected catalog prefix, got %v", workout.Exercises)
	}
	// 3*(270s) + 225s = 1035s rounds to 17 minutes.
	if workout.DurationMinutes != 17 {
		t.Fatalf("expected 17 minute duration, got %d", workout.DurationMinutes)
	}
	if workout.CaloriesBurned != 136 {
		t.Fatalf("expected 136 calories, got %d", workout.CaloriesBurned)
	}
	if workout.Completed {
		t.Fatal("new workout should not be completed")
	}
	if store.created == nil || store.created.ID != 42 {
		t.Fatal("workout was not persisted")
	}
}

func TestGenerateTinyTimeBudgetYieldsEmptyWorkout(t *testing.T) {
	profiles, users, store, now := workoutFixture("beginner", 0)
	service := NewWorkoutService(profiles, users, store, now)

	workout, err := service.Generate(context.Background(), 1, GenerateWorkoutInput{
		WorkoutType:   "home",
		TimeAvailable: 2,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(workout.Exercises) != 0 || workout.DurationMinutes != 0 || workout.CaloriesBurned != 0 {
		t.Fatalf("expected empty workout, got %d exercises, %d minutes, %d calories",
			len(workout.Exercises), workout.DurationMinutes, workout.CaloriesBurned)
	}
}

func TestGenerateFallsBackToProfileTime(t *testing.T) {
	profiles, users, store, now := workoutFixture("beginner", 0)
	profiles.profile.DailyWorkoutTime = 20
	service := NewWorkoutService(profiles, users, store, now)

	workout, err := service.Generate(context.Background(), 1, GenerateWorkoutInput{WorkoutType: "gym"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := len(workout.Exercises); got != 5 {
		t.Fatalf("expected 5 exercises for 20 minutes, got %d", got)
	}
	if workout.WorkoutType != "gym" {
		t.Fatalf("expected gym workout, got %q", workout.WorkoutType)
	}
}

func TestGenerateUnknownVenueFallsBackToHomeCatalog(t *testing.T) {
	profiles, users, store, now := workoutFixture("beginner", 0)
	service := NewWorkoutService(profiles, users, store, now)

	workout, err := service.Generate(context.Background(), 1, GenerateWorkoutInput{
		WorkoutType:   "outdoor",
		TimeAvailable: 8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if workout.Exercises[0].Name != "Push-ups" {
		t.Fatalf("expected home catalog fallback, got %v", workout.Exercises)
	}
	if workout.Title != "Outdoor Workout - Beginner" {
		t.Fatalf("unexpected title %q", workout.Title)
	}
}

func TestEffectiveDifficultyProgression(t *testing.T) {
	cases := []struct {
		level string
		weeks int
		want  string
	}{
		{"beginner", 0, "beginner"},
		{"beginner", 1, "beginner"},
		{"beginner", 2, "intermediate"},
		{"beginner", 3, "intermediate"},
		{"beginner", 4, "intermediate"},
		{"beginner", 8, "intermediate"},
		{"beginner", 20, "intermediate"},
		{"intermediate", 1, "intermediate"},
		{"intermediate", 4, "advanced"},
		{"intermediate", 7, "advanced"},
		{"intermediate", 8, "advanced"},
		{"advanced", 0, "advanced"},
		{"advanced", 3, "advanced"},
		{"advanced", 50, "advanced"},
		{"", 0, "beginner"},
	}
	for _, tc := range cases {
		if got := effectiveDifficulty(tc.level, tc.weeks); got != tc.want {
			t.Fatalf("effectiveDifficulty(%q, %d) = %q, want %q", tc.level, tc.weeks, got, tc.want)
		}
	}
}

func TestEffectiveDifficultyNeverDowngrades(t *testing.T) {
	order := map[string]int{"beginner": 0, "intermediate": 1, "advanced": 2}
	for _, level := range []string{"beginner", "intermediate", "advanced"} {
		previous := order[effectiveDifficulty(level, 0)]
		for weeks := 1; weeks <= 26; weeks++ {
			current := order[effectiveDifficulty(level, weeks)]
			if current < previous {
				t.Fatalf("difficulty downgraded for %s at week %d", level, weeks)
			}
			previous = current
		}
	}
}

func TestWeeksActiveClampsFutureTimestamps(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := weeksActive(now.AddDate(0, 0, 1), now); got != 0 {
		t.Fatalf("expected 0 weeks for future createdAt, got %d", got)
	}
	if got := weeksActive(now.AddDate(0, 0, -15), now); got != 2 {
		t.Fatalf("expected 2 weeks, got %d", got)
	}
}

func TestEstimatedDurationMinutes(t *testing.T) {
	exercises := []models.Exercise{
		{Name: "Push-ups", Sets: 3, Reps: 10, RestSeconds: 60},
		{Name: "Plank", Sets: 3, Reps: 30, RestSeconds: 60},
	}
	// 2 * 3 * 90s = 540s = 9 minutes.
	if got := estimatedDurationMinutes(exercises); got != 9 {
		t.Fatalf("expected 9 minutes, got %d", got)
	}
	if got := estimatedDurationMinutes(nil); got != 0 {
		t.Fatalf("expected 0 minutes for empty selection, got %d", got)
	}
}
