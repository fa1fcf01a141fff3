package repository

import (
	"context"

	"github.com/mrankit10-code/FitSphereAI/internal/models"
)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, postID, userID int64, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := r.db.QueryRow(ctx, query, postID, userID, body).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepository) ListByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, u.name, c.body, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at
	`
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.UserName, &comment.Body, &comment.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// ListByPostIDs fetches comments for a batch of posts in one query, keyed by
// post id.
func (r *CommentRepository) ListByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.Comment, error) {
	if len(postIDs) == 0 {
		return map[int64][]models.Comment{}, nil
	}

	query := `
		SELECT c.id, c.post_id, c.user_id, u.name, c.body, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at
	`
	rows, err := r.db.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPost := map[int64][]models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.UserName, &comment.Body, &comment.CreatedAt)
		if err != nil {
			return nil, err
		}
		byPost[comment.PostID] = append(byPost[comment.PostID], comment)
	}
	return byPost, rows.Err()
}
