//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/blogd/blogd/internal/config"
	"github.com/blogd/blogd/internal/post"
	"github.com/blogd/blogd/internal/post/repository"
	"github.com/blogd/blogd/internal/post/service"
	"github.com/blogd/blogd/internal/seed"
	"github.com/blogd/blogd/internal/server"
)

var dbCounter atomic.Int64

// fixture bundles the per-test resources: a dedicated database, the
// repository for direct store assertions, and the running HTTP server.
// Cleanup drops the database and stops the server.
type fixture struct {
	Server *httptest.Server
	Repo   *repository.MongoRepo
	Svc    service.Service
	DB     *mongo.Database
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbName := fmt.Sprintf("blog_test_%d", dbCounter.Add(1))
	db := mongoClient.Database(dbName)
	repo := repository.NewMongoRepo(db.Collection("posts"))
	svc := service.New(repo)

	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{URI: mongoURI, Database: dbName},
	}
	engine := server.New(cfg, server.Options{
		Service: svc,
		Ping: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	})
	ts := httptest.NewServer(engine)

	t.Cleanup(func() {
		ts.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		require.NoError(t, db.Drop(ctx))
	})

	return &fixture{Server: ts, Repo: repo, Svc: svc, DB: db}
}

// seedPosts inserts n random posts directly into the store, bypassing the API.
func (f *fixture) seedPosts(t *testing.T, n int) []*post.Post {
	t.Helper()
	posts, err := seed.Posts(testCtx, f.Repo, n)
	require.NoError(t, err)
	return posts
}

// fetchStored reads a post straight from the database by id.
func (f *fixture) fetchStored(t *testing.T, id string) *post.Post {
	t.Helper()
	p, err := f.Repo.FindByID(testCtx, id)
	require.NoError(t, err)
	return p
}

func (f *fixture) storeCount(t *testing.T) int64 {
	t.Helper()
	n, err := f.Repo.Count(testCtx)
	require.NoError(t, err)
	return n
}

// doRequest issues an HTTP request against the fixture server and decodes
// the JSON response body into out (when out is non-nil).
func (f *fixture) doRequest(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, f.Server.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// authorInput is the request shape for create/update author fields.
type authorInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type postInput struct {
	ID      string       `json:"id,omitempty"`
	Title   string       `json:"title,omitempty"`
	Content string       `json:"content,omitempty"`
	Author  *authorInput `json:"author,omitempty"`
}
