package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

const (
	feedLimit        = 50
	leaderboardLimit = 100
	maxPostBodyLen   = 2000
)

type communityPostStore interface {
	Create(ctx context.Context, userID int64, body string, images []string) (*models.Post, error)
	List(ctx context.Context, viewerID int64, limit int) ([]models.Post, error)
	GetByID(ctx context.Context, id, viewerID int64) (*models.Post, error)
	Like(ctx context.Context, postID, userID int64) (bool, error)
	Unlike(ctx context.Context, postID, userID int64) error
}

type communityCommentStore interface {
	Create(ctx context.Context, postID, userID int64, body string) (*models.Comment, error)
	ListByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Comment, error)
}

type leaderboardStore interface {
	ListTopByXP(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type CommunityHandler struct {
	postRepo    communityPostStore
	commentRepo communityCommentStore
	userRepo    leaderboardStore
}

func NewCommunityHandler(postRepo communityPostStore, commentRepo communityCommentStore, userRepo leaderboardStore) *CommunityHandler {
	return &CommunityHandler{postRepo: postRepo, commentRepo: commentRepo, userRepo: userRepo}
}

type createPostRequest struct {
	Body   string   `json:"body"`
	Images []string `json:"images"`
}

func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Body = strings.TrimSpace(req.Body)
	if req.Body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Post body is required"})
	}
	if len(req.Body) > maxPostBodyLen {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Post body is too long"})
	}

	post, err := h.postRepo.Create(c.Context(), userID, req.Body, req.Images)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create post"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	posts, err := h.postRepo.List(c.Context(), userID, feedLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch posts"})
	}

	postIDs := make([]int64, 0, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
	}
	comments, err := h.commentRepo.ListByPostIDs(c.Context(), postIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch comments"})
	}
	for i := range posts {
		posts[i].Comments = comments[posts[i].ID]
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// ToggleLike likes the post, or removes the caller's like when it already
// exists. The response carries the refreshed post so the client gets the
// new count in one round trip.
func (h *CommunityHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	postID, err := c.ParamsInt("id")
	if err != nil || postID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	if _, err := h.postRepo.GetByID(c.Context(), int64(postID), userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch post"})
	}

	liked, err := h.postRepo.Like(c.Context(), int64(postID), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to like post"})
	}
	if !liked {
		if err := h.postRepo.Unlike(c.Context(), int64(postID), userID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unlike post"})
		}
	}

	post, err := h.postRepo.GetByID(c.Context(), int64(postID), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch post"})
	}
	return c.JSON(fiber.Map{"post": post, "liked": liked})
}

type createCommentRequest struct {
	Body string `json:"body"`
}

func (h *CommunityHandler) CreateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	postID, err := c.ParamsInt("id")
	if err != nil || postID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Body = strings.TrimSpace(req.Body)
	if req.Body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment body is required"})
	}
	if len(req.Body) > maxPostBodyLen {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment body is too long"})
	}

	if _, err := h.postRepo.GetByID(c.Context(), int64(postID), userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch post"})
	}

	comment, err := h.commentRepo.Create(c.Context(), int64(postID), userID, req.Body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create comment"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

func (h *CommunityHandler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.userRepo.ListTopByXP(c.Context(), leaderboardLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
