package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/repository"
)

type stubProfileStore struct {
	profile     *models.Profile
	getErr      error
	upsertInput repository.UpsertProfileInput
}

func (s *stubProfileStore) GetByUserID(_ context.Context, _ int64) (*models.Profile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.profile, nil
}

func (s *stubProfileStore) Upsert(_ context.Context, _ int64, input repository.UpsertProfileInput) (*models.Profile, error) {
	s.upsertInput = input
	return s.profile, nil
}

func TestGetProfileReturnsNullBeforeFirstSave(t *testing.T) {
	handler := NewProfileHandler(&stubProfileStore{getErr: pgx.ErrNoRows})
	app := newAuthedApp(1, "user")
	app.Get("/api/v1/profile", handler.GetProfile)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if value, present := body["profile"]; !present || value != nil {
		t.Fatalf("expected profile null, got %v", body)
	}
}

func TestSaveProfilePassesFieldsThrough(t *testing.T) {
	age := 28
	store := &stubProfileStore{profile: &models.Profile{UserID: 1, Age: &age}}
	handler := NewProfileHandler(store)
	app := newAuthedApp(1, "user")
	app.Post("/api/v1/profile", handler.SaveProfile)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/profile", fiber.Map{
		"age":             28,
		"height_cm":       175.5,
		"weight_kg":       70.0,
		"gender":          "female",
		"fitness_goal":    "muscle-gain",
		"food_preference": "vegan",
		"fitness_level":   "intermediate",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	in := store.upsertInput
	if in.Age == nil || *in.Age != 28 {
		t.Fatalf("expected age 28, got %v", in.Age)
	}
	if in.Gender == nil || *in.Gender != "female" {
		t.Fatalf("expected gender female, got %v", in.Gender)
	}
	if in.Equipment != nil {
		t.Fatalf("expected omitted equipment to stay nil, got %v", in.Equipment)
	}
}

func TestSaveProfileValidation(t *testing.T) {
	handler := NewProfileHandler(&stubProfileStore{profile: &models.Profile{}})
	app := newAuthedApp(1, "user")
	app.Post("/api/v1/profile", handler.SaveProfile)

	cases := []fiber.Map{
		{"age": 5},
		{"age": 200},
		{"height_cm": -1.0},
		{"weight_kg": 900.0},
		{"gender": "robot"},
		{"fitness_goal": "world-domination"},
		{"daily_workout_time": 2},
		{"food_preference": "carnivore"},
		{"fitness_level": "elite"},
	}
	for i, payload := range cases {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/profile", payload))
		if err != nil {
			t.Fatalf("app.Test case %d: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", i, resp.StatusCode)
		}
	}
}
