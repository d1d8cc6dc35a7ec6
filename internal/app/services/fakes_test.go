package services

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/app/repositories"
	"github.com/emre/postova/internal/pkg/apperrors"
)

// errDuplicate mimics the unique-violation error the postgres driver returns
var errDuplicate = &pgconn.PgError{Code: "23505"}

// In-memory repository implementations backing the service tests.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) addUser(username string) *models.User {
	f.nextID++
	u := &models.User{ID: f.nextID, Username: username, Email: username + "@example.com"}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeGroupStore struct {
	groups map[int64]*models.Group
	nextID int64
}

func newFakeGroupStore() *fakeGroupStore {
	return &fakeGroupStore{groups: make(map[int64]*models.Group)}
}

func (f *fakeGroupStore) addGroup(title, slug string) *models.Group {
	f.nextID++
	g := &models.Group{ID: f.nextID, Title: title, Slug: slug}
	f.groups[g.ID] = g
	return g
}

func (f *fakeGroupStore) Create(_ context.Context, group *models.Group) error {
	for _, g := range f.groups {
		if g.Slug == group.Slug {
			return errDuplicate
		}
	}
	f.nextID++
	group.ID = f.nextID
	cp := *group
	f.groups[group.ID] = &cp
	return nil
}

func (f *fakeGroupStore) GetByID(_ context.Context, id int64) (*models.Group, error) {
	if g, ok := f.groups[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, apperrors.ErrGroupNotFound
}

func (f *fakeGroupStore) GetBySlug(_ context.Context, slug string) (*models.Group, error) {
	for _, g := range f.groups {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, apperrors.ErrGroupNotFound
}

func (f *fakeGroupStore) GetAll(_ context.Context) ([]models.Group, error) {
	out := make([]models.Group, 0, len(f.groups))
	for _, g := range f.groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeGroupStore) Update(_ context.Context, group *models.Group) error {
	if _, ok := f.groups[group.ID]; !ok {
		return apperrors.ErrGroupNotFound
	}
	cp := *group
	f.groups[group.ID] = &cp
	return nil
}

func (f *fakeGroupStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.groups[id]; !ok {
		return apperrors.ErrGroupNotFound
	}
	delete(f.groups, id)
	return nil
}

type fakeFollowStore struct {
	edges map[[2]int64]bool
}

func newFakeFollowStore() *fakeFollowStore {
	return &fakeFollowStore{edges: make(map[[2]int64]bool)}
}

func (f *fakeFollowStore) Create(_ context.Context, userID, authorID int64) (bool, error) {
	key := [2]int64{userID, authorID}
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

func (f *fakeFollowStore) Delete(_ context.Context, userID, authorID int64) (bool, error) {
	key := [2]int64{userID, authorID}
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeFollowStore) Exists(_ context.Context, userID, authorID int64) (bool, error) {
	return f.edges[[2]int64{userID, authorID}], nil
}

func (f *fakeFollowStore) ListAuthorIDs(_ context.Context, userID int64) ([]int64, error) {
	var out []int64
	for key := range f.edges {
		if key[0] == userID {
			out = append(out, key[1])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

type fakePostStore struct {
	posts   []models.Post
	follows *fakeFollowStore
	nextID  int64
	clock   time.Time
}

func newFakePostStore(follows *fakeFollowStore) *fakePostStore {
	return &fakePostStore{
		follows: follows,
		clock:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// addPost publishes a post one minute after the previous one
func (f *fakePostStore) addPost(authorID int64, text string, groupID *int64) models.Post {
	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	p := models.Post{
		ID:       f.nextID,
		Text:     text,
		PubDate:  f.clock,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	f.posts = append(f.posts, p)
	return p
}

// newestFirst returns the feed ordering: pub_date descending, id breaking ties
func (f *fakePostStore) newestFirst(filter func(models.Post) bool) []models.Post {
	var out []models.Post
	for _, p := range f.posts {
		if filter(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func page(posts []models.Post, limit, offset int) []models.Post {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func (f *fakePostStore) ListAll(_ context.Context, limit, offset int) ([]models.Post, error) {
	return page(f.newestFirst(func(models.Post) bool { return true }), limit, offset), nil
}

func (f *fakePostStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.posts)), nil
}

func (f *fakePostStore) ListByGroupID(_ context.Context, groupID int64, limit, offset int) ([]models.Post, error) {
	return page(f.newestFirst(func(p models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), limit, offset), nil
}

func (f *fakePostStore) CountByGroupID(_ context.Context, groupID int64) (int64, error) {
	return int64(len(f.newestFirst(func(p models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}))), nil
}

func (f *fakePostStore) ListByAuthorID(_ context.Context, authorID int64, limit, offset int) ([]models.Post, error) {
	return page(f.newestFirst(func(p models.Post) bool { return p.AuthorID == authorID }), limit, offset), nil
}

func (f *fakePostStore) CountByAuthorID(_ context.Context, authorID int64) (int64, error) {
	return int64(len(f.newestFirst(func(p models.Post) bool { return p.AuthorID == authorID }))), nil
}

func (f *fakePostStore) followedFilter(userID int64) func(models.Post) bool {
	return func(p models.Post) bool {
		return f.follows.edges[[2]int64{userID, p.AuthorID}]
	}
}

func (f *fakePostStore) ListFollowed(_ context.Context, userID int64, limit, offset int) ([]models.Post, error) {
	return page(f.newestFirst(f.followedFilter(userID)), limit, offset), nil
}

func (f *fakePostStore) CountFollowed(_ context.Context, userID int64) (int64, error) {
	return int64(len(f.newestFirst(f.followedFilter(userID)))), nil
}

func (f *fakePostStore) Create(_ context.Context, post *models.Post) error {
	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	post.ID = f.nextID
	post.PubDate = f.clock
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostStore) GetByID(_ context.Context, id int64) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

func (f *fakePostStore) Update(_ context.Context, post *models.Post) error {
	for i, p := range f.posts {
		if p.ID == post.ID {
			// pub_date is immutable; keep the stored one
			updated := *post
			updated.PubDate = p.PubDate
			f.posts[i] = updated
			return nil
		}
	}
	return apperrors.ErrPostNotFound
}

func (f *fakePostStore) Delete(_ context.Context, id int64) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrPostNotFound
}

type fakeCommentStore struct {
	comments []models.Comment
	nextID   int64
}

func (f *fakeCommentStore) Create(_ context.Context, comment *models.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.Created = time.Now()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentStore) ListByPostID(_ context.Context, postID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeFileStore struct {
	files  map[int64]*models.File
	nextID int64
}

func (f *fakeFileStore) Create(_ context.Context, file *models.File) (int64, error) {
	if f.files == nil {
		f.files = make(map[int64]*models.File)
	}
	f.nextID++
	file.ID = f.nextID
	f.files[file.ID] = file
	return file.ID, nil
}

func (f *fakeFileStore) GetByID(_ context.Context, id int64) (*models.File, error) {
	if file, ok := f.files[id]; ok {
		return file, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeFileStore) Delete(_ context.Context, id int64) error {
	delete(f.files, id)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*repositories.RefreshToken
	nextID int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*repositories.RefreshToken)}
}

func (f *fakeTokenStore) Create(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	f.nextID++
	f.tokens[token] = &repositories.RefreshToken{ID: f.nextID, UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeTokenStore) Find(_ context.Context, token string) (*repositories.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok && t.ExpiresAt.After(time.Now()) {
		return t, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}
