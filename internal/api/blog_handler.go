package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noobdev/site-api/internal/notion"
	"github.com/noobdev/site-api/internal/render"
	"github.com/noobdev/site-api/internal/service"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog read endpoints
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// ListPosts handles GET /api/blog
// Returns metadata for all published posts; never a partial list.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := h.services.Blog.ListPosts(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/blog/:slug
// Returns the full post with content blocks; ?format=html returns the
// rendered fragment instead of JSON.
func (h *BlogHandler) GetPost(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	post, err := h.services.Blog.GetPost(ctx, slug)
	if err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to fetch post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	if c.Query("format") == "html" {
		c.Header("X-Meta-Description", render.MetaDescription(post.Content))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.Blocks(post.Content)))
		return
	}

	c.JSON(http.StatusOK, post)
}
