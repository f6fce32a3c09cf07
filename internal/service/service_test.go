package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/noobdev/site-api/internal/models"
	"github.com/noobdev/site-api/internal/notion"
	"github.com/rs/zerolog"
)

// stubSource is a local ContentSource stub; the shared mocks package cannot
// be used here without an import cycle.
type stubSource struct {
	posts     []models.Post
	blocks    map[string][]models.Block
	listErr   error
	blocksErr error
}

func (s *stubSource) ListPublished(ctx context.Context) ([]models.Post, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.posts, nil
}

func (s *stubSource) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	for i := range s.posts {
		if s.posts[i].Slug == slug {
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, notion.ErrNotFound
}

func (s *stubSource) GetBlocks(ctx context.Context, pageID string) ([]models.Block, error) {
	if s.blocksErr != nil {
		return nil, s.blocksErr
	}
	return s.blocks[pageID], nil
}

// stubStore records calls without persistence.
type stubStore struct {
	likes    map[string]int
	comments map[string][]models.Comment
	err      error
}

func newStubStore() *stubStore {
	return &stubStore{
		likes:    make(map[string]int),
		comments: make(map[string][]models.Comment),
	}
}

func (s *stubStore) Get(ctx context.Context, slug string) (*models.Interactions, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Interactions{Likes: s.likes[slug], Comments: s.comments[slug]}, nil
}

func (s *stubStore) Like(ctx context.Context, slug string, delta int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count := s.likes[slug] + delta
	if count < 0 {
		count = 0
	}
	s.likes[slug] = count
	return count, nil
}

func (s *stubStore) AddComment(ctx context.Context, slug string, comment models.Comment) error {
	if s.err != nil {
		return s.err
	}
	s.comments[slug] = append([]models.Comment{comment}, s.comments[slug]...)
	return nil
}

func (s *stubStore) Close() error { return nil }

func TestBlogService_GetPostAttachesBlocks(t *testing.T) {
	source := &stubSource{
		posts: []models.Post{{ID: "p1", Slug: "hello"}},
		blocks: map[string][]models.Block{
			"p1": {{Type: models.BlockParagraph}},
		},
	}
	svc := newBlogService(source, zerolog.Nop())

	post, err := svc.GetPost(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if len(post.Content) != 1 {
		t.Errorf("Expected blocks attached, got %d", len(post.Content))
	}
}

func TestBlogService_GetPostNotFound(t *testing.T) {
	svc := newBlogService(&stubSource{}, zerolog.Nop())

	_, err := svc.GetPost(context.Background(), "missing")
	if !errors.Is(err, notion.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestBlogService_GetPostBlockFailure(t *testing.T) {
	source := &stubSource{
		posts:     []models.Post{{ID: "p1", Slug: "hello"}},
		blocksErr: errors.New("upstream error"),
	}
	svc := newBlogService(source, zerolog.Nop())

	if _, err := svc.GetPost(context.Background(), "hello"); err == nil {
		t.Error("Expected block fetch failure to propagate")
	}
}

func TestBlogService_ListNeverNil(t *testing.T) {
	svc := newBlogService(&stubSource{}, zerolog.Nop())

	posts, err := svc.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if posts == nil {
		t.Error("Expected empty slice, got nil")
	}
}

func TestInteractionService_Like(t *testing.T) {
	svc := newInteractionService(newStubStore(), zerolog.Nop())
	ctx := context.Background()

	count, err := svc.Like(ctx, "post", models.ActionLike)
	if err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1, got %d", count)
	}

	count, err = svc.Like(ctx, "post", models.ActionUnlike)
	if err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected round trip back to 0, got %d", count)
	}
}

func TestInteractionService_InvalidAction(t *testing.T) {
	svc := newInteractionService(newStubStore(), zerolog.Nop())

	if _, err := svc.Like(context.Background(), "post", "boost"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected ErrInvalidAction, got %v", err)
	}
}

func TestInteractionService_AddComment(t *testing.T) {
	st := newStubStore()
	svc := newInteractionService(st, zerolog.Nop())
	fixed := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	comment, err := svc.AddComment(context.Background(), "post", "", "  hello there  ")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	if comment.User != models.DefaultCommentUser {
		t.Errorf("Expected default user, got %q", comment.User)
	}
	if comment.Text != "hello there" {
		t.Errorf("Expected trimmed text, got %q", comment.Text)
	}
	if comment.ID != fixed.UnixMilli() {
		t.Errorf("Expected millisecond timestamp id, got %d", comment.ID)
	}
	if comment.Date != "March 5, 2024" {
		t.Errorf("Expected display date, got %q", comment.Date)
	}
	if len(st.comments["post"]) != 1 {
		t.Errorf("Expected comment stored, got %d", len(st.comments["post"]))
	}
}

func TestInteractionService_EmptyComment(t *testing.T) {
	svc := newInteractionService(newStubStore(), zerolog.Nop())

	if _, err := svc.AddComment(context.Background(), "post", "Ada", "   "); !errors.Is(err, ErrEmptyComment) {
		t.Errorf("Expected ErrEmptyComment, got %v", err)
	}
}
