package handlers

import (
	"net/http"

	"mandir/internal/middleware"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListPosts - GET /api/community/posts
func (h *Handlers) ListPosts(c *gin.Context) {
	posts, err := h.services.Community.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost - POST /api/community/posts
func (h *Handlers) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.services.Community.Create(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}
