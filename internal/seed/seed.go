// Package seed generates random blog posts and inserts them directly into
// the repository, bypassing the HTTP layer. The integration harness uses it
// to populate the store before each test.
package seed

import (
	"context"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/blogd/blogd/internal/post"
	"github.com/blogd/blogd/internal/post/repository"
)

// DefaultCount is the number of posts Posts inserts when callers pass n <= 0.
const DefaultCount = 10

// RandomPost builds one post with a sentence title, a paragraph of content
// and a random author. ID and Created are assigned here because inserts
// bypass the service layer.
func RandomPost() *post.Post {
	return &post.Post{
		ID:      uuid.NewString(),
		Title:   gofakeit.Sentence(6),
		Content: gofakeit.Paragraph(1, 4, 12, " "),
		Author: post.Author{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		},
		Created: gofakeit.PastDate().UTC(),
	}
}

// Posts inserts n random posts and returns them in insertion order.
func Posts(ctx context.Context, repo repository.Repository, n int) ([]*post.Post, error) {
	if n <= 0 {
		n = DefaultCount
	}
	out := make([]*post.Post, 0, n)
	for i := 0; i < n; i++ {
		p := RandomPost()
		if err := repo.Insert(ctx, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
