package repository

import (
	"context"
	"errors"

	"github.com/blogd/blogd/internal/post"
)

var ErrNotFound = errors.New("post not found")

// Update carries the fields an update may overwrite. Nil pointers mean
// "leave the stored value alone"; id and created are never touched.
type Update struct {
	Title   *string
	Content *string
	Author  *post.Author
}

// Repository defines persistence operations for blog posts.
type Repository interface {
	Insert(ctx context.Context, p *post.Post) error
	FindByID(ctx context.Context, id string) (*post.Post, error)
	List(ctx context.Context) ([]*post.Post, error)
	Update(ctx context.Context, id string, upd Update) (*post.Post, error)
	Count(ctx context.Context) (int64, error)
	Drop(ctx context.Context) error
}
