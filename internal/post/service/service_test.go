package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blogd/blogd/internal/post"
	"github.com/blogd/blogd/internal/post/repository"
)

func TestServiceCreateAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo())

	p, err := svc.Create(ctx, &post.Post{
		// caller-supplied id/created must be discarded
		ID:      "client-chosen",
		Title:   "T",
		Content: "C",
		Author:  post.Author{FirstName: "John", LastName: "Doe"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.NotEqual(t, "client-chosen", p.ID)
	require.False(t, p.Created.IsZero())

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "T", got.Title)
	require.Equal(t, "John Doe", got.Author.Display())
}

func TestServiceUpdatePreservesIDAndCreated(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo())

	p, err := svc.Create(ctx, &post.Post{Title: "old", Content: "body"})
	require.NoError(t, err)

	title := "new"
	author := post.Author{FirstName: "Jane", LastName: "Doe"}
	upd, err := svc.Update(ctx, p.ID, repository.Update{Title: &title, Author: &author})
	require.NoError(t, err)
	require.Equal(t, p.ID, upd.ID)
	require.Equal(t, p.Created, upd.Created)
	require.Equal(t, "new", upd.Title)
	require.Equal(t, "body", upd.Content)

	// applying the same update again yields the same stored state
	again, err := svc.Update(ctx, p.ID, repository.Update{Title: &title, Author: &author})
	require.NoError(t, err)
	require.Equal(t, upd, again)
}

func TestServiceUpdateUnknownID(t *testing.T) {
	svc := New(repository.NewMemoryRepo())
	title := "x"
	_, err := svc.Update(context.Background(), "nope", repository.Update{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCountAndReset(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo())
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &post.Post{Title: "t"})
		require.NoError(t, err)
	}
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	require.NoError(t, svc.Reset(ctx))
	n, err = svc.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}
