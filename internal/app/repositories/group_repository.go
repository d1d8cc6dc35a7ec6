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

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, group.Title, group.Slug, group.Description).Scan(&group.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetBySlug retrieves a group by its slug
func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return r.getOne(ctx, "slug = $1", slug)
}

func (r *GroupRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Group, error) {
	query := `
		SELECT id, title, slug, description
		FROM groups
		WHERE ` + where

	var group models.Group
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&group.ID,
		&group.Title,
		&group.Slug,
		&group.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	return &group, nil
}

// GetAll retrieves all groups ordered by title
func (r *GroupRepository) GetAll(ctx context.Context) ([]models.Group, error) {
	query := `
		SELECT id, title, slug, description
		FROM groups
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(
			&group.ID,
			&group.Title,
			&group.Slug,
			&group.Description,
		); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// Update updates a group's title and description. The slug is immutable.
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups
		SET title = $1, description = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, group.Title, group.Description, group.ID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return nil
}

// Delete deletes a group. Posts keep existing; their group reference is
// nulled by the foreign key's SET NULL rule.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return nil
}
