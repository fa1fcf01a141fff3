package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

type stubWorkoutGenerator struct {
	workout  *models.Workout
	workouts []models.Workout
	err      error
	input    services.GenerateWorkoutInput
}

func (s *stubWorkoutGenerator) Generate(_ context.Context, _ int64, input services.GenerateWorkoutInput) (*models.Workout, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return s.workout, nil
}

func (s *stubWorkoutGenerator) ListWorkouts(_ context.Context, _ int64) ([]models.Workout, error) {
	return s.workouts, nil
}

type stubWorkoutCompleter struct {
	result *services.CompletionResult
	err    error
}

func (s *stubWorkoutCompleter) CompleteWorkout(_ context.Context, _, _ int64) (*services.CompletionResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestGenerateWorkoutReturnsCreated(t *testing.T) {
	generator := &stubWorkoutGenerator{workout: &models.Workout{
		ID:              5,
		Title:           "Home Workout - Beginner",
		DurationMinutes: 17,
		CaloriesBurned:  136,
	}}
	handler := NewWorkoutHandler(generator, &stubWorkoutCompleter{})

	app := newAuthedApp(1, "user")
	app.Post("/api/v1/workouts/generate", handler.Generate)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/workouts/generate", fiber.Map{
		"workout_type":   "home",
		"time_available": 16,
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if generator.input.WorkoutType != "home" || generator.input.TimeAvailable != 16 {
		t.Fatalf("unexpected service input %+v", generator.input)
	}
}

func TestGenerateWorkoutRejectsUnknownType(t *testing.T) {
	handler := NewWorkoutHandler(&stubWorkoutGenerator{}, &stubWorkoutCompleter{})
	app := newAuthedApp(1, "user")
	app.Post("/api/v1/workouts/generate", handler.Generate)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/workouts/generate", fiber.Map{
		"workout_type": "underwater",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGenerateWorkoutRequiresCompleteProfile(t *testing.T) {
	handler := NewWorkoutHandler(&stubWorkoutGenerator{err: services.ErrProfileIncomplete}, &stubWorkoutCompleter{})
	app := newAuthedApp(1, "user")
	app.Post("/api/v1/workouts/generate", handler.Generate)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/workouts/generate", fiber.Map{}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCompleteWorkoutReturnsGamificationResult(t *testing.T) {
	completer := &stubWorkoutCompleter{result: &services.CompletionResult{
		Workout:   &models.Workout{ID: 5, Completed: true},
		XPGained:  34,
		Streak:    3,
		NewBadges: []string{},
	}}
	handler := NewWorkoutHandler(&stubWorkoutGenerator{}, completer)

	app := newAuthedApp(1, "user")
	app.Put("/api/v1/workouts/:id/complete", handler.Complete)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/api/v1/workouts/5/complete", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["xp_gained"] != float64(34) || body["streak"] != float64(3) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCompleteWorkoutConflictsOnRepeat(t *testing.T) {
	handler := NewWorkoutHandler(&stubWorkoutGenerator{}, &stubWorkoutCompleter{err: services.ErrAlreadyCompleted})
	app := newAuthedApp(1, "user")
	app.Put("/api/v1/workouts/:id/complete", handler.Complete)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/api/v1/workouts/5/complete", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestCompleteWorkoutNotFound(t *testing.T) {
	handler := NewWorkoutHandler(&stubWorkoutGenerator{}, &stubWorkoutCompleter{err: pgx.ErrNoRows})
	app := newAuthedApp(1, "user")
	app.Put("/api/v1/workouts/:id/complete", handler.Complete)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/api/v1/workouts/99/complete", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
