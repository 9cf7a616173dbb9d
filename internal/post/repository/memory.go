package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blogd/blogd/internal/post"
)

// MemoryRepo is a simple in-memory repository used by unit tests so the
// handler and service layers can be exercised without a running MongoDB.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*post.Post
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*post.Post)}
}

func (m *MemoryRepo) Insert(_ context.Context, p *post.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	cp := *p
	m.store[p.ID] = &cp
	m.order = append(m.order, p.ID)
	return nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id string) (*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(_ context.Context) ([]*post.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*post.Post, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.store[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Update(_ context.Context, id string, upd Update) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Author != nil {
		p.Author = *upd.Author
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}

func (m *MemoryRepo) Drop(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]*post.Post)
	m.order = nil
	return nil
}
