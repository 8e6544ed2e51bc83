package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"github.com/gin-gonic/gin"
)

// CreateBlog serves both the admin route and the volunteer route; the role
// guard in front of each decides who gets in. New blogs start as drafts.
func (h *Handler) CreateBlog(c *gin.Context) {
	var input models.Blog
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Status == "" {
		input.Status = models.BlogDraft
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Blogs.Insert(ctx, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetBlogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	blogs, err := h.stores.Blogs.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *Handler) GetPublishedBlogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	blogs, err := h.stores.Blogs.FindByStatus(ctx, models.BlogPublished)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *Handler) GetPublishedBlogByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	blog, err := h.stores.Blogs.FindByID(ctx, c.Param("id"))
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *Handler) PublishBlog(c *gin.Context) {
	h.setBlogStatus(c, models.BlogPublished)
}

func (h *Handler) DraftBlog(c *gin.Context) {
	h.setBlogStatus(c, models.BlogDraft)
}

func (h *Handler) setBlogStatus(c *gin.Context, status models.BlogStatus) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Blogs.SetStatus(ctx, c.Param("id"), status)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteBlog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.stores.Blogs.Delete(ctx, c.Param("id"))
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
		return
	}

	c.JSON(http.StatusOK, result)
}
