package notion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/noobdev/site-api/internal/config"
	"github.com/noobdev/site-api/internal/models"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when no published page matches a slug.
var ErrNotFound = errors.New("post not found")

// Notion property names this source maps into post fields.
const (
	propTitle     = "Title"
	propSlug      = "Slug"
	propDate      = "Date"
	propCategory  = "Category"
	propMetaDesc  = "Meta Description"
	propExcerpt   = "Excerpt"
	propReadTime  = "ReadTime"
	propPublished = "Published"
)

// Source adapts the Notion database into normalized post records. Every
// call goes to the live API; nothing is cached.
type Source struct {
	client     *Client
	databaseID string
	log        zerolog.Logger
}

// NewSource creates a content source backed by the Notion API
func NewSource(cfg *config.NotionConfig, log zerolog.Logger) *Source {
	return &Source{
		client:     NewClient(cfg, log),
		databaseID: cfg.DatabaseID,
		log:        log.With().Str("component", "content_source").Logger(),
	}
}

// ListPublished returns metadata for every published post, newest first.
func (s *Source) ListPublished(ctx context.Context) ([]models.Post, error) {
	resp, err := s.client.queryDatabase(ctx, s.databaseID, &queryRequest{
		Filter: &queryFilter{
			Property: propPublished,
			Checkbox: &checkboxEquals{Equals: true},
		},
		Sorts: []querySort{
			{Property: propDate, Direction: "descending"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}

	s.log.Info().Int("count", len(resp.Results)).Msg("Fetched published posts")

	posts := make([]models.Post, 0, len(resp.Results))
	for _, p := range resp.Results {
		posts = append(posts, postFromPage(p, models.DefaultImage))
	}
	return posts, nil
}

// GetBySlug finds the published page whose Slug property equals slug. When
// the source returns several matches the first one wins; the order is
// whatever the API chose.
func (s *Source) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	resp, err := s.client.queryDatabase(ctx, s.databaseID, &queryRequest{
		Filter: &queryFilter{
			Property: propSlug,
			RichText: &richTextEquals{Equals: slug},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query post %q: %w", slug, err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrNotFound
	}

	post := postFromPage(resp.Results[0], "")
	return &post, nil
}

// GetBlocks fetches a page's child blocks in source order, single-level.
func (s *Source) GetBlocks(ctx context.Context, pageID string) ([]models.Block, error) {
	resp, err := s.client.listBlockChildren(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocks for page %s: %w", pageID, err)
	}
	return resp.Results, nil
}

// postFromPage maps a page's named properties into a post. Missing optional
// properties fall back to defaults; the mapping never fails.
func postFromPage(p page, fallbackImage string) models.Post {
	post := models.Post{
		ID:       p.ID,
		Title:    p.text(propTitle),
		Slug:     p.text(propSlug),
		Date:     p.dateStart(propDate),
		Category: p.selectName(propCategory),
		Excerpt:  p.text(propMetaDesc),
		ReadTime: p.text(propReadTime),
		Image:    p.coverURL(),
	}

	if post.Title == "" {
		post.Title = models.DefaultTitle
	}
	if post.Slug == "" {
		post.Slug = p.ID
	}
	if post.Date == "" {
		post.Date = time.Now().Format(time.RFC3339)
	}
	if post.Category == "" {
		post.Category = models.DefaultCategory
	}
	if post.Excerpt == "" {
		post.Excerpt = p.text(propExcerpt)
	}
	if post.ReadTime == "" {
		post.ReadTime = models.DefaultReadTime
	}
	if post.Image == "" {
		post.Image = fallbackImage
	}
	return post
}
