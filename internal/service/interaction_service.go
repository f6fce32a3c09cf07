package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/noobdev/site-api/internal/models"
	"github.com/noobdev/site-api/internal/store"
	"github.com/rs/zerolog"
)

// ErrInvalidAction is returned for like actions other than like/unlike.
var ErrInvalidAction = errors.New("action must be \"like\" or \"unlike\"")

// ErrEmptyComment is returned when a comment has no text.
var ErrEmptyComment = errors.New("comment text is required")

// interactionService is the concrete implementation of InteractionService
type interactionService struct {
	store store.Store
	log   zerolog.Logger
	// now is swappable so tests get deterministic ids and dates
	now func() time.Time
}

func newInteractionService(s store.Store, log zerolog.Logger) *interactionService {
	return &interactionService{
		store: s,
		log:   log.With().Str("service", "interactions").Logger(),
		now:   time.Now,
	}
}

// Get returns a slug's likes and comments, with zero defaults
func (s *interactionService) Get(ctx context.Context, slug string) (*models.Interactions, error) {
	return s.store.Get(ctx, slug)
}

// Like applies a like or unlike and returns the new count
func (s *interactionService) Like(ctx context.Context, slug, action string) (int, error) {
	var delta int
	switch action {
	case models.ActionLike:
		delta = 1
	case models.ActionUnlike:
		delta = -1
	default:
		return 0, ErrInvalidAction
	}

	count, err := s.store.Like(ctx, slug, delta)
	if err != nil {
		return 0, err
	}

	s.log.Info().Str("slug", slug).Str("action", action).Int("likes", count).Msg("Like updated")
	return count, nil
}

// AddComment builds a comment with a generated id/date and prepends it.
// The id is the creation time in milliseconds; collisions under rapid
// concurrent submission are accepted.
func (s *interactionService) AddComment(ctx context.Context, slug, user, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	user = strings.TrimSpace(user)
	if user == "" {
		user = models.DefaultCommentUser
	}

	now := s.now()
	comment := models.Comment{
		ID:   now.UnixMilli(),
		User: user,
		Date: now.Format("January 2, 2006"),
		Text: text,
	}

	if err := s.store.AddComment(ctx, slug, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", slug).Str("user", user).Msg("Comment added")
	return &comment, nil
}
