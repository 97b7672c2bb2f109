package application

import (
	"context"
	"errors"

	"github.com/yourusername/blogr/internal/domain/entity"
	repo "github.com/yourusername/blogr/internal/domain/repository"
)

// PostService is the post store plus the ownership check on mutations.
type PostService struct {
	Repo repo.PostRepository
}

func NewPostService(repo repo.PostRepository) *PostService {
	return &PostService{Repo: repo}
}

// List returns all posts joined with their author's username, newest first.
// Posts sharing a creation timestamp keep insertion order.
func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Repo.List(ctx)
}

// Create stores a new post for the given author. The body may be empty;
// the title may not. The creation timestamp is assigned by the server.
func (s *PostService) Create(ctx context.Context, title, body string, authorID int64) (int64, error) {
	if title == "" {
		return 0, ErrTitleRequired
	}
	p := &entity.Post{Title: title, Body: body, AuthorID: authorID}
	if err := s.Repo.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update changes a post's title and body. Existence is delegated to Get so a
// missing id reports not-found before any write happens.
func (s *PostService) Update(ctx context.Context, id int64, title, body string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Update(ctx, id, title, body)
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

// Authorize decides whether identity may mutate post. With enforceOwnership
// false it always succeeds, which read-only paths use. The caller identity is
// already resolved and non-anonymous here; the login guard runs upstream.
func (s *PostService) Authorize(post *entity.Post, identity *entity.User, enforceOwnership bool) error {
	if !enforceOwnership {
		return nil
	}
	if post.AuthorID != identity.ID {
		return ErrForbidden
	}
	return nil
}
