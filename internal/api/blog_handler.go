package api

import (
	"net/http"
	"strconv"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/service"
	"github.com/article-writer-api/internal/wordpress"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BlogHandler handles WordPress publishing endpoints
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

// Connect handles POST /api/blog/connect
func (h *BlogHandler) Connect(c *gin.Context) {
	var req models.ConnectBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status, err := h.services.Blog.Connect(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	h.log.Info().Str("site_url", req.URL).Msg("Blog connected")

	c.JSON(http.StatusOK, status)
}

// Status handles GET /api/blog/status
func (h *BlogHandler) Status(c *gin.Context) {
	status, err := h.services.Blog.Status(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Publish handles POST /api/blog/post
func (h *BlogHandler) Publish(c *gin.Context) {
	var req models.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Blog.Publish(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("article_id", article.ID).
		Msg("Article published to blog")

	c.JSON(http.StatusOK, article)
}

// ListPosts handles GET /api/blog/posts
func (h *BlogHandler) ListPosts(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 10)

	posts, err := h.services.Blog.ListPosts(c.Request.Context(), currentUserID(c), page, perPage)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	if posts == nil {
		posts = []wordpress.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page":  page,
		"count": len(posts),
	})
}

// UpdatePost handles PUT /api/blog/post/:id
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Blog.UpdatePost(c.Request.Context(), currentUserID(c), postID, &req); err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

// DeletePost handles DELETE /api/blog/post/:id
func (h *BlogHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.services.Blog.DeletePost(c.Request.Context(), currentUserID(c), postID); err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
