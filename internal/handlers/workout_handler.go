package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

var allowedWorkoutTypes = map[string]struct{}{
	"home": {}, "gym": {}, "outdoor": {},
}

type workoutGenerator interface {
	Generate(ctx context.Context, userID int64, input services.GenerateWorkoutInput) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID int64) ([]models.Workout, error)
}

type workoutCompleter interface {
	CompleteWorkout(ctx context.Context, userID, workoutID int64) (*services.CompletionResult, error)
}

type WorkoutHandler struct {
	workouts     workoutGenerator
	gamification workoutCompleter
}

func NewWorkoutHandler(workouts workoutGenerator, gamification workoutCompleter) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, gamification: gamification}
}

type generateWorkoutRequest struct {
	WorkoutType   string `json:"workout_type"`
	TimeAvailable int    `json:"time_available"`
}

func (h *WorkoutHandler) Generate(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req generateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.WorkoutType != "" {
		if _, ok := allowedWorkoutTypes[req.WorkoutType]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid workout_type"})
		}
	}
	if req.TimeAvailable < 0 || req.TimeAvailable > 240 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "time_available must be between 0 and 240 minutes"})
	}

	workout, err := h.workouts.Generate(c.Context(), userID, services.GenerateWorkoutInput{
		WorkoutType:   req.WorkoutType,
		TimeAvailable: req.TimeAvailable,
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Complete your profile to generate workouts"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate workout"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workouts, err := h.workouts.ListWorkouts(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workouts"})
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

func (h *WorkoutHandler) Complete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	result, err := h.gamification.CompleteWorkout(c.Context(), userID, int64(workoutID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		case errors.Is(err, services.ErrAlreadyCompleted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Workout already completed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete workout"})
	}

	return c.JSON(fiber.Map{
		"workout":    result.Workout,
		"xp_gained":  result.XPGained,
		"streak":     result.Streak,
		"new_badges": result.NewBadges,
	})
}
