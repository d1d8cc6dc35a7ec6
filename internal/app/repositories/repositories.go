package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	GroupRepository   *GroupRepository
	PostRepository    *PostRepository
	CommentRepository *CommentRepository
	FollowRepository  *FollowRepository
	FileRepository    *FileRepository
	TokenRepository   *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		GroupRepository:   NewGroupRepository(db),
		PostRepository:    NewPostRepository(db),
		CommentRepository: NewCommentRepository(db),
		FollowRepository:  NewFollowRepository(db),
		FileRepository:    NewFileRepository(db),
		TokenRepository:   NewTokenRepository(db),
	}
}
