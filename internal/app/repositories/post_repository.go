package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/pkg/apperrors"
)

// PostRepository handles database operations for posts. All list queries
// return posts newest publication first, ties broken by descending id.
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postColumns = `
		p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image_file_id,
		u.username, u.first_name, u.last_name,
		g.title, g.slug, g.description,
		f.file_url`

const postJoins = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
	LEFT JOIN files f ON f.id = p.image_file_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var author models.User
	var groupTitle, groupSlug, groupDescription *string
	var imageURL *string

	err := row.Scan(
		&post.ID,
		&post.Text,
		&post.PubDate,
		&post.AuthorID,
		&post.GroupID,
		&post.ImageFileID,
		&author.Username,
		&author.FirstName,
		&author.LastName,
		&groupTitle,
		&groupSlug,
		&groupDescription,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}

	author.ID = post.AuthorID
	post.Author = &author

	// Absent group or image reference stays nil instead of failing the read
	if post.GroupID != nil && groupTitle != nil {
		post.Group = &models.Group{
			ID:          *post.GroupID,
			Title:       *groupTitle,
			Slug:        *groupSlug,
			Description: *groupDescription,
		}
	}
	if post.ImageFileID != nil && imageURL != nil {
		post.Image = &models.File{
			ID:      *post.ImageFileID,
			FileURL: *imageURL,
		}
	}

	return &post, nil
}

// Create creates a new post. The publication timestamp is set by the
// database at insert time and never updated afterwards.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (text, author_id, group_id, image_file_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pub_date
	`

	err := r.db.QueryRow(ctx, query,
		post.Text, post.AuthorID, post.GroupID, post.ImageFileID,
	).Scan(&post.ID, &post.PubDate)
	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// GetByID retrieves a post with its author, group and image
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT` + postColumns + postJoins + `
	WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}

	return post, nil
}

// Update updates a post's mutable fields (text, group, image)
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET text = $1, group_id = $2, image_file_id = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, post.Text, post.GroupID, post.ImageFileID, post.ID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete deletes a post; its comments go with it via the cascade rule
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

func (r *PostRepository) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]models.Post, error) {
	query := `SELECT` + postColumns + postJoins
	if where != "" {
		query += " WHERE " + where
	}
	query += fmt.Sprintf(" ORDER BY p.pub_date DESC, p.id DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}
	return total, nil
}

// ListAll retrieves one page of the global feed
func (r *PostRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return r.list(ctx, "", nil, limit, offset)
}

// CountAll returns the number of posts overall
func (r *PostRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts`)
}

// ListByGroupID retrieves one page of a group's posts
func (r *PostRepository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]models.Post, error) {
	return r.list(ctx, "p.group_id = $1", []interface{}{groupID}, limit, offset)
}

// CountByGroupID returns the number of posts in a group
func (r *PostRepository) CountByGroupID(ctx context.Context, groupID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
}

// ListByAuthorID retrieves one page of an author's posts
func (r *PostRepository) ListByAuthorID(ctx context.Context, authorID int64, limit, offset int) ([]models.Post, error) {
	return r.list(ctx, "p.author_id = $1", []interface{}{authorID}, limit, offset)
}

// CountByAuthorID returns the number of posts by an author
func (r *PostRepository) CountByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
}

// ListFollowed retrieves one page of posts by authors the user follows
func (r *PostRepository) ListFollowed(ctx context.Context, userID int64, limit, offset int) ([]models.Post, error) {
	where := "p.author_id IN (SELECT author_id FROM follows WHERE user_id = $1)"
	return r.list(ctx, where, []interface{}{userID}, limit, offset)
}

// CountFollowed returns the number of posts by authors the user follows
func (r *PostRepository) CountFollowed(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM posts
		WHERE author_id IN (SELECT author_id FROM follows WHERE user_id = $1)`, userID)
}
