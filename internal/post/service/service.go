package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/blogd/blogd/internal/post"
	"github.com/blogd/blogd/internal/post/repository"
)

var ErrNotFound = errors.New("post not found")

// Service defines the blog-post business operations used by the handler
// layer and by the integration harness.
type Service interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Get(ctx context.Context, id string) (*post.Post, error)
	List(ctx context.Context) ([]*post.Post, error)
	Update(ctx context.Context, id string, upd repository.Update) (*post.Post, error)
	Count(ctx context.Context) (int64, error)
	Reset(ctx context.Context) error
}

func New(repo repository.Repository) Service {
	return &svc{repo: repo}
}

type svc struct {
	repo repository.Repository
}

// Create assigns the identifier and creation timestamp; both are immutable
// afterwards. Whatever id/created the caller set is discarded.
func (s *svc) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	p.ID = uuid.NewString()
	p.Created = time.Now().UTC()
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *svc) Get(ctx context.Context, id string) (*post.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *svc) List(ctx context.Context) ([]*post.Post, error) {
	return s.repo.List(ctx)
}

func (s *svc) Update(ctx context.Context, id string, upd repository.Update) (*post.Post, error) {
	p, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *svc) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Reset wipes all stored posts. Only the test harness calls this; there is
// no delete endpoint on the HTTP surface.
func (s *svc) Reset(ctx context.Context) error {
	return s.repo.Drop(ctx)
}
