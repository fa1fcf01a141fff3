package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

type nutritionPlanner interface {
	GetPlan(ctx context.Context, userID int64) (*services.NutritionPlan, error)
	TodaysMeals(ctx context.Context, userID int64) (*services.DailyMeals, error)
}

type NutritionHandler struct {
	nutrition nutritionPlanner
}

func NewNutritionHandler(nutrition nutritionPlanner) *NutritionHandler {
	return &NutritionHandler{nutrition: nutrition}
}

func (h *NutritionHandler) GetPlan(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	plan, err := h.nutrition.GetPlan(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Complete your profile (age, height, weight) to get a nutrition plan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build nutrition plan"})
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (h *NutritionHandler) TodaysMeals(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	meals, err := h.nutrition.TodaysMeals(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Complete your profile to get meal suggestions"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to pick today's meals"})
	}
	return c.JSON(fiber.Map{"meals": meals})
}
