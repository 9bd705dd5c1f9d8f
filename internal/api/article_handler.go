package api

import (
	"net/http"
	"strconv"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// Generate handles POST /api/articles/generate
func (h *ArticleHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Generate(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("article_id", article.ID).
		Str("topic", article.Topic).
		Msg("Article generated")

	c.JSON(http.StatusCreated, article)
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	filter := models.ArticleFilter{
		Status: c.Query("status"),
		Niche:  c.Query("niche"),
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
	}

	articles, total, err := h.services.Article.List(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

// Get handles GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Update handles PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// Regenerate handles POST /api/articles/:id/regenerate
func (h *ArticleHandler) Regenerate(c *gin.Context) {
	// Every field is optional; a bare POST regenerates with the stored values.
	var req models.RegenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	article, err := h.services.Article.Regenerate(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// intQuery parses an integer query parameter with a default
func intQuery(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
