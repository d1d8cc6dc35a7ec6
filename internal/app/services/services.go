package services

import (
	"context"
	"time"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/app/repositories"
)

// Services in this package:
// - AuthService: registration, login and token refresh
// - FeedService: the four read paths (global, group, author, followed)
// - PostService: publishing, editing and deleting posts
// - CommentService: commenting on posts
// - GroupService: group administration
// - FollowService: the follow graph
//
// Each service depends on the narrow repository interfaces below rather than
// the concrete pgx repositories, so the business rules can be exercised
// against in-memory implementations in tests.

// UserReader reads user accounts
type UserReader interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserStore extends UserReader with account creation
type UserStore interface {
	UserReader
	Create(ctx context.Context, user *models.User) error
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// GroupStore reads and writes groups
type GroupStore interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetAll(ctx context.Context) ([]models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id int64) error
}

// PostReader serves the feed queries; implementations must order results
// newest publication first with descending id as the tie-breaker
type PostReader interface {
	ListAll(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountAll(ctx context.Context) (int64, error)
	ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]models.Post, error)
	CountByGroupID(ctx context.Context, groupID int64) (int64, error)
	ListByAuthorID(ctx context.Context, authorID int64, limit, offset int) ([]models.Post, error)
	CountByAuthorID(ctx context.Context, authorID int64) (int64, error)
	ListFollowed(ctx context.Context, userID int64, limit, offset int) ([]models.Post, error)
	CountFollowed(ctx context.Context, userID int64) (int64, error)
}

// PostStore extends PostReader with writes
type PostStore interface {
	PostReader
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

// CommentStore reads and writes comments
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

// FollowStore maintains follow edges. Create must be atomic with respect to
// the (user, author) uniqueness invariant.
type FollowStore interface {
	Create(ctx context.Context, userID, authorID int64) (bool, error)
	Delete(ctx context.Context, userID, authorID int64) (bool, error)
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
	ListAuthorIDs(ctx context.Context, userID int64) ([]int64, error)
}

// FileStore records uploaded files
type FileStore interface {
	Create(ctx context.Context, file *models.File) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	Delete(ctx context.Context, id int64) error
}

// TokenStore persists refresh tokens
type TokenStore interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Find(ctx context.Context, token string) (*repositories.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
