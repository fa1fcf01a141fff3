package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, userID int64, body string, images []string) (*models.Post, error) {
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}

	query := `
		INSERT INTO posts (user_id, body, images)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	post := &models.Post{
		UserID: userID,
		Body:   body,
		Images: images,
	}
	if err := r.db.QueryRow(ctx, query, userID, body, imagesJSON).Scan(&post.ID, &post.CreatedAt); err != nil {
		return nil, err
	}
	return post, nil
}

const postSelect = `
	SELECT p.id, p.user_id, u.name, p.body, p.images, p.created_at,
		   (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id),
		   EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = $1)
	FROM posts p
	JOIN users u ON u.id = p.user_id
`

// List returns the newest posts with like counts and whether the viewer has
// liked each one.
func (r *PostRepository) List(ctx context.Context, viewerID int64, limit int) ([]models.Post, error) {
	query := postSelect + ` ORDER BY p.created_at DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, viewerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := r.scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *PostRepository) GetByID(ctx context.Context, id, viewerID int64) (*models.Post, error) {
	query := postSelect + ` WHERE p.id = $2`
	return r.scanPost(r.db.QueryRow(ctx, query, viewerID, id))
}

// Like records the viewer's like. Returns false when the post was already
// liked by this user.
func (r *PostRepository) Like(ctx context.Context, postID, userID int64) (bool, error) {
	query := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostRepository) Unlike(ctx context.Context, postID, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	return err
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}

func (r *PostRepository) scanPost(row pgx.Row) (*models.Post, error) {
	var post models.Post
	var images []byte
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.UserName,
		&post.Body,
		&images,
		&post.CreatedAt,
		&post.LikeCount,
		&post.Liked,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &post.Images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %w", err)
	}
	return &post, nil
}
