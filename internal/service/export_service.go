package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/noobdev/site-api/internal/models"
	"github.com/rs/zerolog"
)

// exportService walks the content source and writes every published post to
// a static file tree: <outDir>/data/blog.json plus one
// <outDir>/data/blog/<slug>.json per post. Always a full re-export; any
// failure aborts the run.
type exportService struct {
	source ContentSource
	log    zerolog.Logger
}

// NewExportService creates an ExportService over the given content source
func NewExportService(source ContentSource, log zerolog.Logger) ExportService {
	return &exportService{
		source: source,
		log:    log.With().Str("service", "export").Logger(),
	}
}

// Run performs one full export into outDir
func (s *exportService) Run(ctx context.Context, outDir string) error {
	log := s.log.With().Str("run_id", uuid.NewString()).Logger()
	log.Info().Str("dir", outDir).Msg("Starting static blog export")

	posts, err := s.source.ListPublished(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	log.Info().Int("count", len(posts)).Msg("Fetched published posts")

	// A duplicate slug silently shadows a post in the exported tree.
	seen := make(map[string]bool, len(posts))
	for _, post := range posts {
		if seen[post.Slug] {
			log.Warn().Str("slug", post.Slug).Msg("Duplicate slug; earlier export will be overwritten")
		}
		seen[post.Slug] = true
	}

	blogDir := filepath.Join(outDir, "data", "blog")
	if err := os.MkdirAll(blogDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	listingPath := filepath.Join(outDir, "data", "blog.json")
	if err := writeJSON(listingPath, posts); err != nil {
		return err
	}
	log.Info().Str("path", listingPath).Msg("Wrote post listing")

	for i := range posts {
		post := posts[i]
		blocks, err := s.source.GetBlocks(ctx, post.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch content for %q: %w", post.Slug, err)
		}
		post.Content = blocks

		path := filepath.Join(blogDir, post.Slug+".json")
		if err := writeJSON(path, post); err != nil {
			return err
		}
		log.Info().Str("slug", post.Slug).Int("blocks", len(blocks)).Msg("Exported post")
	}

	log.Info().Msg("Static blog export complete")
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
