package service

import (
	"context"

	"github.com/noobdev/site-api/internal/models"
	"github.com/noobdev/site-api/internal/store"
	"github.com/rs/zerolog"
)

// ContentSource is what the blog and export services need from the CMS.
// Implemented by the Notion adapter.
type ContentSource interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetBlocks(ctx context.Context, pageID string) ([]models.Block, error)
}

// BlogService defines the interface for blog read operations
type BlogService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
}

// InteractionService defines the interface for like/comment operations
type InteractionService interface {
	Get(ctx context.Context, slug string) (*models.Interactions, error)
	Like(ctx context.Context, slug, action string) (int, error)
	AddComment(ctx context.Context, slug, user, text string) (*models.Comment, error)
}

// ExportService materializes all published posts to a static file tree
type ExportService interface {
	Run(ctx context.Context, outDir string) error
}

// Services holds all service interfaces
type Services struct {
	Blog        BlogService
	Interaction InteractionService
	Export      ExportService
}

// NewServices creates all services
func NewServices(source ContentSource, interactions store.Store, log zerolog.Logger) *Services {
	return &Services{
		Blog:        newBlogService(source, log),
		Interaction: newInteractionService(interactions, log),
		Export:      NewExportService(source, log),
	}
}
