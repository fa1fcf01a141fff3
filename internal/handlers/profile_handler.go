package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/repository"
)

var (
	allowedGenders = map[string]struct{}{
		"male": {}, "female": {}, "other": {}, "prefer-not-to-say": {},
	}
	allowedGoals = map[string]struct{}{
		"weight-loss": {}, "muscle-gain": {}, "endurance": {},
		"flexibility": {}, "general-fitness": {},
	}
	allowedFoodPreferences = map[string]struct{}{
		"vegetarian": {}, "non-vegetarian": {}, "vegan": {}, "no-preference": {},
	}
	allowedFitnessLevels = map[string]struct{}{
		"beginner": {}, "intermediate": {}, "advanced": {},
	}
)

type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	Upsert(ctx context.Context, userID int64, input repository.UpsertProfileInput) (*models.Profile, error)
}

type ProfileHandler struct {
	profileRepo profileStore
}

func NewProfileHandler(profileRepo profileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(fiber.Map{"profile": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(fiber.Map{"profile": profile})
}

type saveProfileRequest struct {
	Age              *int      `json:"age"`
	HeightCM         *float64  `json:"height_cm"`
	WeightKG         *float64  `json:"weight_kg"`
	Gender           *string   `json:"gender"`
	FitnessGoal      *string   `json:"fitness_goal"`
	DailyWorkoutTime *int      `json:"daily_workout_time"`
	Equipment        *[]string `json:"equipment"`
	FoodPreference   *string   `json:"food_preference"`
	FitnessLevel     *string   `json:"fitness_level"`
}

func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req saveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validateProfileRequest(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	profile, err := h.profileRepo.Upsert(c.Context(), userID, repository.UpsertProfileInput{
		Age:              req.Age,
		HeightCM:         req.HeightCM,
		WeightKG:         req.WeightKG,
		Gender:           req.Gender,
		FitnessGoal:      req.FitnessGoal,
		DailyWorkoutTime: req.DailyWorkoutTime,
		Equipment:        req.Equipment,
		FoodPreference:   req.FoodPreference,
		FitnessLevel:     req.FitnessLevel,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func validateProfileRequest(req *saveProfileRequest) string {
	if req.Age != nil && (*req.Age < 13 || *req.Age > 120) {
		return "age must be between 13 and 120"
	}
	if req.HeightCM != nil && (*req.HeightCM <= 0 || *req.HeightCM > 300) {
		return "height_cm must be between 0 and 300"
	}
	if req.WeightKG != nil && (*req.WeightKG <= 0 || *req.WeightKG > 500) {
		return "weight_kg must be between 0 and 500"
	}
	if req.Gender != nil {
		if _, ok := allowedGenders[*req.Gender]; !ok {
			return "invalid gender"
		}
	}
	if req.FitnessGoal != nil {
		if _, ok := allowedGoals[*req.FitnessGoal]; !ok {
			return "invalid fitness_goal"
		}
	}
	if req.DailyWorkoutTime != nil && (*req.DailyWorkoutTime < 5 || *req.DailyWorkoutTime > 240) {
		return "daily_workout_time must be between 5 and 240 minutes"
	}
	if req.FoodPreference != nil {
		if _, ok := allowedFoodPreferences[*req.FoodPreference]; !ok {
			return "invalid food_preference"
		}
	}
	if req.FitnessLevel != nil {
		if _, ok := allowedFitnessLevels[*req.FitnessLevel]; !ok {
			return "invalid fitness_level"
		}
	}
	return ""
}
