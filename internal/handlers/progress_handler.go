package handlers

import (
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
	"github.com/mrankit10-code/FitSphereAI/internal/repository"
	"github.com/mrankit10-code/FitSphereAI/internal/services"
)

const (
	progressListLimit = 100
	maxPhotoSizeBytes = 5 * 1024 * 1024
)

type progressStore interface {
	Create(ctx context.Context, userID int64, input repository.CreateProgressInput) (*models.ProgressEntry, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.ProgressEntry, error)
}

type ProgressHandler struct {
	progressRepo progressStore
	storage      services.StorageService
}

func NewProgressHandler(progressRepo progressStore, storage services.StorageService) *ProgressHandler {
	return &ProgressHandler{progressRepo: progressRepo, storage: storage}
}

type createProgressRequest struct {
	WeightKG     *float64           `json:"weight_kg"`
	BodyFat      *float64           `json:"body_fat"`
	MuscleMass   *float64           `json:"muscle_mass"`
	Measurements map[string]float64 `json:"measurements"`
	Notes        *string            `json:"notes"`
}

func (h *ProgressHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.WeightKG == nil && req.BodyFat == nil && req.MuscleMass == nil &&
		len(req.Measurements) == 0 && req.Notes == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Provide at least one measurement"})
	}
	if req.WeightKG != nil && (*req.WeightKG <= 0 || *req.WeightKG > 500) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight_kg must be between 0 and 500"})
	}
	if req.BodyFat != nil && (*req.BodyFat < 0 || *req.BodyFat > 100) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body_fat must be between 0 and 100"})
	}

	entry, err := h.progressRepo.Create(c.Context(), userID, repository.CreateProgressInput{
		WeightKG:     req.WeightKG,
		BodyFat:      req.BodyFat,
		MuscleMass:   req.MuscleMass,
		Measurements: req.Measurements,
		Notes:        req.Notes,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record progress"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *ProgressHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	entries, err := h.progressRepo.ListByUserID(c.Context(), userID, progressListLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (h *ProgressHandler) Stats(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	entries, err := h.progressRepo.ListByUserID(c.Context(), userID, progressListLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}
	return c.JSON(fiber.Map{"stats": progressStats(entries)})
}

// UploadPhotos stores before/after photos and records them as a progress
// entry. At least one of the two files must be present.
func (h *ProgressHandler) UploadPhotos(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage service is not configured"})
	}

	beforeURL, err := h.uploadPhotoField(c, userID, "before")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	afterURL, err := h.uploadPhotoField(c, userID, "after")
	if err != nil {
		if beforeURL != nil {
			_ = h.storage.DeleteFile(c.Context(), *beforeURL)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if beforeURL == nil && afterURL == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Attach a before or after photo"})
	}

	notes := strings.TrimSpace(c.FormValue("notes"))
	input := repository.CreateProgressInput{
		BeforeImageURL: beforeURL,
		AfterImageURL:  afterURL,
	}
	if notes != "" {
		input.Notes = &notes
	}

	entry, err := h.progressRepo.Create(c.Context(), userID, input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record progress photos"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

// uploadPhotoField uploads the named multipart file when present. A missing
// field is not an error; it just returns nil.
func (h *ProgressHandler) uploadPhotoField(c *fiber.Ctx, userID int64, field string) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fileHeader.Size <= 0 {
		return nil, fmt.Errorf("%s photo is empty", field)
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		return nil, fmt.Errorf("%s photo exceeds 5MB limit", field)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return nil, fmt.Errorf("%s photo must be a jpg, jpeg, png, or webp file", field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s photo", field)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	filename := uuid.NewString() + ext
	folder := fmt.Sprintf("progress/%d/%s", userID, field)
	url, err := h.storage.UploadFile(c.Context(), file, filename, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s photo", field)
	}
	return &url, nil
}

// progressStats summarizes entries, which arrive newest first. The weight
// change compares the oldest and newest entries that carry a weight, rounded
// to one decimal.
func progressStats(entries []models.ProgressEntry) models.ProgressStats {
	stats := models.ProgressStats{TotalEntries: len(entries)}

	var latest, first *models.ProgressEntry
	for i := range entries {
		if entries[i].WeightKG == nil {
			continue
		}
		if latest == nil {
			latest = &entries[i]
		}
		first = &entries[i]
	}
	if latest == nil {
		return stats
	}

	stats.LatestEntry = &models.ProgressSnapshot{Date: latest.RecordedAt, WeightKG: latest.WeightKG}
	stats.FirstEntry = &models.ProgressSnapshot{Date: first.RecordedAt, WeightKG: first.WeightKG}
	stats.WeightChange = math.Round((*latest.WeightKG-*first.WeightKG)*10) / 10
	return stats
}
