package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/pkg/utils"
)

type stubAuthUserStore struct {
	created *models.User
	byEmail *models.User
	byID    *models.User
	badges  []string
}

func (s *stubAuthUserStore) CreateUser(_ context.Context, user *models.User) error {
	user.ID = 7
	s.created = user
	return nil
}

func (s *stubAuthUserStore) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	if s.byEmail == nil {
		return nil, pgx.ErrNoRows
	}
	return s.byEmail, nil
}

func (s *stubAuthUserStore) GetByID(_ context.Context, _ int64) (*models.User, error) {
	if s.byID == nil {
		return nil, pgx.ErrNoRows
	}
	return s.byID, nil
}

func (s *stubAuthUserStore) ListBadges(_ context.Context, _ int64) ([]string, error) {
	return s.badges, nil
}

// newAuthedApp builds a fiber app whose middleware injects the locals the
// real auth middleware would set.
func newAuthedApp(userID int64, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", strconv.FormatInt(userID, 10))
		c.Locals("role", role)
		return c.Next()
	})
	return app
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestSignupCreatesUserAndReturnsToken(t *testing.T) {
	store := &stubAuthUserStore{}
	handler := NewAuthHandler(store, "test-secret")

	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	req := jsonRequest(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Asha",
		"email":    "Asha@Example.com",
		"password": "secret1",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if store.created == nil || store.created.Role != "user" {
		t.Fatalf("expected user role, got %+v", store.created)
	}
	if store.created.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", store.created.Email)
	}
	if store.created.PasswordHash == "secret1" {
		t.Fatal("password must be stored hashed")
	}

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the response")
	}
	claims, err := utils.ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "7" || claims.Role != "user" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestSignupRejectsBadInput(t *testing.T) {
	handler := NewAuthHandler(&stubAuthUserStore{}, "test-secret")
	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	cases := []fiber.Map{
		{"name": "", "email": "a@example.com", "password": "secret1"},
		{"name": "Asha", "email": "not-an-email", "password": "secret1"},
		{"name": "Asha", "email": "a@example.com", "password": "short"},
	}
	for i, payload := range cases {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/signup", payload))
		if err != nil {
			t.Fatalf("app.Test case %d: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", i, resp.StatusCode)
		}
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := &stubAuthUserStore{byEmail: &models.User{ID: 3, Email: "a@example.com"}}
	handler := NewAuthHandler(store, "test-secret")
	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     "Asha",
		"email":    "a@example.com",
		"password": "secret1",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &stubAuthUserStore{byEmail: &models.User{ID: 3, Email: "a@example.com", PasswordHash: hash, Role: "user"}}
	handler := NewAuthHandler(store, "test-secret")
	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "a@example.com",
		"password": "wrong-password",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMeReturnsUserWithBadges(t *testing.T) {
	store := &stubAuthUserStore{
		byID:   &models.User{ID: 9, Name: "Asha", Email: "a@example.com", Role: "user", XP: 120, Streak: 4},
		badges: []string{"7-day-streak"},
	}
	handler := NewAuthHandler(store, "test-secret")

	app := newAuthedApp(9, "user")
	app.Get("/api/auth/me", handler.Me)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	user, _ := body["user"].(map[string]any)
	if user == nil {
		t.Fatalf("expected user payload, got %v", body)
	}
	if user["xp"] != float64(120) || user["streak"] != float64(4) {
		t.Fatalf("unexpected gamification fields %v", user)
	}
	badges, _ := user["badges"].([]any)
	if len(badges) != 1 || badges[0] != "7-day-streak" {
		t.Fatalf("expected badge list, got %v", user["badges"])
	}
}
