package store

import (
	"context"

	"github.com/noobdev/site-api/internal/models"
)

// Store persists per-slug engagement state. Route handlers depend only on
// this interface so backends can be swapped without touching them.
type Store interface {
	// Get returns the interactions for a slug. Unknown slugs yield zero
	// likes and an empty comment list, never an error.
	Get(ctx context.Context, slug string) (*models.Interactions, error)

	// Like adjusts a slug's like count by delta and returns the new count.
	// The count is clamped at zero; decrementing past it is a no-op.
	Like(ctx context.Context, slug string, delta int) (int, error)

	// AddComment prepends a comment to a slug's list (newest first).
	AddComment(ctx context.Context, slug string, comment models.Comment) error

	Close() error
}
