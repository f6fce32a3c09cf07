package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/noobdev/site-api/internal/models"
	"github.com/rs/zerolog"
)

// fileStore keeps the whole interaction document in a single JSON file.
// Every mutation reads the document, changes one slug's entry, and rewrites
// the file wholesale. There is no cross-process locking; last writer wins.
// The mutex only keeps one process from tearing its own writes.
type fileStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewFileStore creates the JSON-file-backed interaction store
func NewFileStore(path string, log zerolog.Logger) Store {
	return &fileStore{
		path: path,
		log:  log.With().Str("component", "file_store").Logger(),
	}
}

// Get returns the interactions for a slug with zero/empty defaults
func (s *fileStore) Get(ctx context.Context, slug string) (*models.Interactions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	comments := doc.Comments[slug]
	if comments == nil {
		comments = []models.Comment{}
	}
	return &models.Interactions{
		Likes:    doc.Likes[slug],
		Comments: comments,
	}, nil
}

// Like adjusts the like count for a slug, clamped at zero
func (s *fileStore) Like(ctx context.Context, slug string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	count := doc.Likes[slug] + delta
	if count < 0 {
		count = 0
	}
	doc.Likes[slug] = count

	if err := s.save(doc); err != nil {
		return 0, err
	}
	return count, nil
}

// AddComment prepends a comment to the slug's list
func (s *fileStore) AddComment(ctx context.Context, slug string, comment models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Comments[slug] = append([]models.Comment{comment}, doc.Comments[slug]...)
	return s.save(doc)
}

func (s *fileStore) Close() error {
	return nil
}

// load reads the backing file, creating an empty document on first access.
func (s *fileStore) load() (*models.InteractionDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := models.NewInteractionDocument()
		if err := s.save(doc); err != nil {
			return nil, err
		}
		s.log.Info().Str("path", s.path).Msg("Created empty interaction file")
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction file: %w", err)
	}

	doc := models.NewInteractionDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse interaction file: %w", err)
	}
	if doc.Likes == nil {
		doc.Likes = make(map[string]int)
	}
	if doc.Comments == nil {
		doc.Comments = make(map[string][]models.Comment)
	}
	return doc, nil
}

// save rewrites the whole document. No incremental append.
func (s *fileStore) save(doc *models.InteractionDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create interaction directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode interaction document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write interaction file: %w", err)
	}
	return nil
}
