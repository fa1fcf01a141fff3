package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

type challengeManager interface {
	ListActive(ctx context.Context) ([]models.Challenge, error)
	Join(ctx context.Context, challengeID, userID int64) (*models.Challenge, error)
	UpdateProgress(ctx context.Context, challengeID, userID int64, progress *int) (*models.ChallengeParticipant, error)
}

type ChallengeHandler struct {
	challenges challengeManager
}

func NewChallengeHandler(challenges challengeManager) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges}
}

func (h *ChallengeHandler) List(c *fiber.Ctx) error {
	challenges, err := h.challenges.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}
	return c.JSON(fiber.Map{"challenges": challenges})
}

func (h *ChallengeHandler) Join(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil || challengeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge id"})
	}

	challenge, err := h.challenges.Join(c.Context(), int64(challengeID), userID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
		case errors.Is(err, services.ErrChallengeInactive):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Challenge is not active"})
		case errors.Is(err, services.ErrAlreadyJoined):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already joined this challenge"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to join challenge"})
	}
	return c.JSON(fiber.Map{"challenge": challenge})
}

type challengeProgressRequest struct {
	Progress *int `json:"progress"`
}

func (h *ChallengeHandler) UpdateProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil || challengeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid challenge id"})
	}

	var req challengeProgressRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Progress != nil && *req.Progress < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "progress must not be negative"})
	}

	participant, err := h.challenges.UpdateProgress(c.Context(), int64(challengeID), userID, req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
		case errors.Is(err, services.ErrNotParticipating):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Join the challenge before updating progress"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update challenge progress"})
	}
	return c.JSON(fiber.Map{"participant": participant})
}
