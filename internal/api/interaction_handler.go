package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noobdev/site-api/internal/models"
	"github.com/noobdev/site-api/internal/service"
	"github.com/rs/zerolog"
)

// InteractionHandler handles like/comment endpoints
type InteractionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(services *service.Services, log zerolog.Logger) *InteractionHandler {
	return &InteractionHandler{
		services: services,
		log:      log.With().Str("handler", "interactions").Logger(),
	}
}

// Get handles GET /api/interactions/:slug
// Unknown slugs return zero likes and an empty comment list.
func (h *InteractionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	interactions, err := h.services.Interaction.Get(ctx, slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to load interactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load interactions"})
		return
	}

	c.JSON(http.StatusOK, interactions)
}

// Like handles POST /api/interactions/:slug/like
func (h *InteractionHandler) Like(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	var req models.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	likes, err := h.services.Interaction.Like(ctx, slug, req.Action)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to update likes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// AddComment handles POST /api/interactions/:slug/comment
func (h *InteractionHandler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Interaction.AddComment(ctx, slug, req.User, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to add comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
