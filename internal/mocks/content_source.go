package mocks

import (
	"context"

	"github.com/noobdev/site-api/internal/models"
	"github.com/noobdev/site-api/internal/notion"
	"github.com/noobdev/site-api/internal/service"
)

// MockContentSource is a mock implementation of service.ContentSource
type MockContentSource struct {
	ListPublishedFunc func(ctx context.Context) ([]models.Post, error)
	GetBySlugFunc     func(ctx context.Context, slug string) (*models.Post, error)
	GetBlocksFunc     func(ctx context.Context, pageID string) ([]models.Block, error)

	// Default behavior when the funcs above are nil
	Posts  []models.Post
	Blocks map[string][]models.Block
}

// Verify interface compliance
var _ service.ContentSource = (*MockContentSource)(nil)

func NewMockContentSource() *MockContentSource {
	return &MockContentSource{
		Posts:  make([]models.Post, 0),
		Blocks: make(map[string][]models.Block),
	}
}

func (m *MockContentSource) ListPublished(ctx context.Context) ([]models.Post, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx)
	}
	return m.Posts, nil
}

func (m *MockContentSource) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	for i := range m.Posts {
		if m.Posts[i].Slug == slug {
			post := m.Posts[i]
			return &post, nil
		}
	}
	return nil, notion.ErrNotFound
}

func (m *MockContentSource) GetBlocks(ctx context.Context, pageID string) ([]models.Block, error) {
	if m.GetBlocksFunc != nil {
		return m.GetBlocksFunc(ctx, pageID)
	}
	return m.Blocks[pageID], nil
}
