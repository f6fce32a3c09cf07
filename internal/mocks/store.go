package mocks

import (
	"context"
	"sync"

	"github.com/noobdev/site-api/internal/models"
	"github.com/noobdev/site-api/internal/store"
)

// MockInteractionStore is an in-memory implementation of store.Store
type MockInteractionStore struct {
	mu       sync.Mutex
	Likes    map[string]int
	Comments map[string][]models.Comment

	GetFunc        func(ctx context.Context, slug string) (*models.Interactions, error)
	LikeFunc       func(ctx context.Context, slug string, delta int) (int, error)
	AddCommentFunc func(ctx context.Context, slug string, comment models.Comment) error
}

// Verify interface compliance
var _ store.Store = (*MockInteractionStore)(nil)

func NewMockInteractionStore() *MockInteractionStore {
	return &MockInteractionStore{
		Likes:    make(map[string]int),
		Comments: make(map[string][]models.Comment),
	}
}

func (m *MockInteractionStore) Get(ctx context.Context, slug string) (*models.Interactions, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, slug)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	comments := m.Comments[slug]
	if comments == nil {
		comments = []models.Comment{}
	}
	return &models.Interactions{Likes: m.Likes[slug], Comments: comments}, nil
}

func (m *MockInteractionStore) Like(ctx context.Context, slug string, delta int) (int, error) {
	if m.LikeFunc != nil {
		return m.LikeFunc(ctx, slug, delta)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	count := m.Likes[slug] + delta
	if count < 0 {
		count = 0
	}
	m.Likes[slug] = count
	return count, nil
}

func (m *MockInteractionStore) AddComment(ctx context.Context, slug string, comment models.Comment) error {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, slug, comment)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comments[slug] = append([]models.Comment{comment}, m.Comments[slug]...)
	return nil
}

func (m *MockInteractionStore) Close() error {
	return nil
}
