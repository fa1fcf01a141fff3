package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

const (
	defaultAdminPageSize = 20
	maxAdminPageSize     = 100
)

type adminUserStore interface {
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type workoutCounter interface {
	Count(ctx context.Context) (int, error)
}

type postCounter interface {
	Count(ctx context.Context) (int, error)
}

type activeChallengeCounter interface {
	CountActive(ctx context.Context) (int, error)
}

type challengeCreator interface {
	Create(ctx context.Context, input services.CreateChallengeInput) (*models.Challenge, error)
}

type AdminHandler struct {
	userRepo      adminUserStore
	workoutRepo   workoutCounter
	postRepo      postCounter
	challengeRepo activeChallengeCounter
	challenges    challengeCreator
}

func NewAdminHandler(
	userRepo adminUserStore,
	workoutRepo workoutCounter,
	postRepo postCounter,
	challengeRepo activeChallengeCounter,
	challenges challengeCreator,
) *AdminHandler {
	return &AdminHandler{
		userRepo:      userRepo,
		workoutRepo:   workoutRepo,
		postRepo:      postRepo,
		challengeRepo: challengeRepo,
		challenges:    challenges,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultAdminPageSize)
	if limit < 1 {
		limit = defaultAdminPageSize
	}
	if limit > maxAdminPageSize {
		limit = maxAdminPageSize
	}

	users, err := h.userRepo.List(c.Context(), limit, (page-1)*limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	total, err := h.userRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count users"})
	}

	totalPages := (total + limit - 1) / limit
	return c.JSON(fiber.Map{
		"users": users,
		"pagination": models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	totalUsers, err := h.userRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count users"})
	}
	totalWorkouts, err := h.workoutRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count workouts"})
	}
	totalPosts, err := h.postRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count posts"})
	}
	activeChallenges, err := h.challengeRepo.CountActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count challenges"})
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"total_users":       totalUsers,
			"total_workouts":    totalWorkouts,
			"total_posts":       totalPosts,
			"active_challenges": activeChallenges,
		},
	})
}

type createChallengeRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	DurationDays int       `json:"duration_days"`
	XPReward     int       `json:"xp_reward"`
	EndDate      time.Time `json:"end_date"`
}

func (h *AdminHandler) CreateChallenge(c *fiber.Ctx) error {
	var req createChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	challenge, err := h.challenges.Create(c.Context(), services.CreateChallengeInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		DurationDays: req.DurationDays,
		XPReward:     req.XPReward,
		EndDate:      req.EndDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge definition"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create challenge"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"challenge": challenge})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	adminID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	targetID, err := c.ParamsInt("id")
	if err != nil || targetID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}
	if int64(targetID) == adminID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	deleted, err := h.userRepo.Delete(c.Context(), int64(targetID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
