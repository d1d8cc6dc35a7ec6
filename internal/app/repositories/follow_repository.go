package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FollowRepository handles database operations for follow edges. The
// follows table carries a UNIQUE (user_id, author_id) constraint, so
// concurrent creates for the same pair can never produce two edges.
type FollowRepository struct {
	db *pgxpool.Pool
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts a follow edge if it does not exist yet. Returns true when
// a new edge was created, false when the edge was already present. The
// duplicate case is resolved atomically by ON CONFLICT DO NOTHING rather
// than a check-then-insert.
func (r *FollowRepository) Create(ctx context.Context, userID, authorID int64) (bool, error) {
	query := squirrel.Insert("follows").
		Columns("user_id", "author_id").
		Values(userID, authorID).
		Suffix("ON CONFLICT (user_id, author_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error creating follow edge: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete removes a follow edge if present. Returns true when an edge was
// deleted; deleting a non-existent edge is a no-op.
func (r *FollowRepository) Delete(ctx context.Context, userID, authorID int64) (bool, error) {
	query := squirrel.Delete("follows").
		Where("user_id = ?", userID).
		Where("author_id = ?", authorID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error deleting follow edge: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Exists reports whether user follows author
func (r *FollowRepository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`,
		userID, authorID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking follow edge: %w", err)
	}

	return exists, nil
}

// ListAuthorIDs returns the set of author IDs the user follows
func (r *FollowRepository) ListAuthorIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT author_id FROM follows WHERE user_id = $1 ORDER BY author_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing followed authors: %w", err)
	}
	defer rows.Close()

	var authorIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		authorIDs = append(authorIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return authorIDs, nil
}
