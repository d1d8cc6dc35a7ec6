package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/postova/internal/app/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

// Create creates a new comment on a post
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created
	`

	err := r.db.QueryRow(ctx, query,
		comment.PostID, comment.AuthorID, comment.Text,
	).Scan(&comment.ID, &comment.Created)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}

	return nil
}

// ListByPostID retrieves all comments of a post, oldest first
func (r *CommentRepository) ListByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created,
			u.username, u.first_name, u.last_name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created, c.id
	`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		var author models.User
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Text,
			&comment.Created,
			&author.Username,
			&author.FirstName,
			&author.LastName,
		); err != nil {
			return nil, err
		}
		author.ID = comment.AuthorID
		comment.Author = &author
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
