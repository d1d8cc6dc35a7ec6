package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/pkg/apperrors"
)

// FileRepository handles database records for uploaded files
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create records an uploaded file and returns its ID
func (r *FileRepository) Create(ctx context.Context, file *models.File) (int64, error) {
	query := squirrel.Insert("files").
		Columns("file_name", "file_path", "file_url", "file_size", "file_type", "uploaded_by").
		Values(file.FileName, file.FilePath, file.FileURL, file.FileSize, file.FileType, file.UploadedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating file record: %w", err)
	}

	file.ID = id
	return id, nil
}

// GetByID retrieves a file record
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := squirrel.Select(
		"id", "file_name", "file_path", "file_url", "file_size", "file_type", "uploaded_by", "created_at",
	).
		From("files").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var file models.File
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&file.ID,
		&file.FileName,
		&file.FilePath,
		&file.FileURL,
		&file.FileSize,
		&file.FileType,
		&file.UploadedBy,
		&file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving file record: %w", err)
	}

	return &file, nil
}

// Delete removes a file record
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("files").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting file record: %w", err)
	}

	return nil
}
