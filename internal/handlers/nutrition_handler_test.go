package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

type stubNutritionPlanner struct {
	plan  *services.NutritionPlan
	meals *services.DailyMeals
	err   error
}

func (s *stubNutritionPlanner) GetPlan(_ context.Context, _ int64) (*services.NutritionPlan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func (s *stubNutritionPlanner) TodaysMeals(_ context.Context, _ int64) (*services.DailyMeals, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.meals, nil
}

func TestGetPlanReturnsTargets(t *testing.T) {
	handler := NewNutritionHandler(&stubNutritionPlanner{plan: &services.NutritionPlan{
		DailyCalories: 2887,
		Macros:        services.Macros{Protein: 140, Carbs: 325, Fats: 80},
		WaterIntakeML: 2500,
	}})

	app := newAuthedApp(1, "user")
	app.Get("/api/v1/nutrition/plan", handler.GetPlan)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nutrition/plan", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	plan, _ := body["plan"].(map[string]any)
	if plan["daily_calories"] != float64(2887) || plan["water_intake_ml"] != float64(2500) {
		t.Fatalf("unexpected plan %v", plan)
	}
}

func TestGetPlanRequiresCompleteProfile(t *testing.T) {
	handler := NewNutritionHandler(&stubNutritionPlanner{err: services.ErrProfileIncomplete})
	app := newAuthedApp(1, "user")
	app.Get("/api/v1/nutrition/plan", handler.GetPlan)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nutrition/plan", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestTodaysMeals(t *testing.T) {
	handler := NewNutritionHandler(&stubNutritionPlanner{meals: &services.DailyMeals{
		Breakfast: "Oats with fruits",
		Lunch:     "Dal with rice",
		Dinner:    "Vegetable khichdi",
		Snack:     "Fruits",
	}})

	app := newAuthedApp(1, "user")
	app.Get("/api/v1/nutrition/today", handler.TodaysMeals)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nutrition/today", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	meals, _ := body["meals"].(map[string]any)
	if meals["breakfast"] != "Oats with fruits" {
		t.Fatalf("unexpected meals %v", meals)
	}
}
