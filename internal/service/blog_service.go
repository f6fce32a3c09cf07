package service

import (
	"context"

	"github.com/noobdev/site-api/internal/models"
	"github.com/rs/zerolog"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	source ContentSource
	log    zerolog.Logger
}

func newBlogService(source ContentSource, log zerolog.Logger) *blogService {
	return &blogService{
		source: source,
		log:    log.With().Str("service", "blog").Logger(),
	}
}

// ListPosts returns metadata for all published posts, newest first. Content
// blocks are not included at list time.
func (s *blogService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.source.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// GetPost returns the full post for a slug, content blocks included.
// Propagates the source's not-found sentinel unchanged.
func (s *blogService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.source.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	blocks, err := s.source.GetBlocks(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Content = blocks

	s.log.Debug().Str("slug", slug).Int("blocks", len(blocks)).Msg("Fetched post")
	return post, nil
}
