package api

import (
	"net/http"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ImageHandler handles image discovery endpoints
type ImageHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(services *service.Services, log zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		services: services,
		log:      log.With().Str("handler", "image").Logger(),
	}
}

// Search handles GET /api/images/search
func (h *ImageHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	q := models.ImageQuery{
		Query:       query,
		Page:        intQuery(c, "page", 1),
		PerPage:     intQuery(c, "per_page", 12),
		Orientation: c.Query("orientation"),
		Color:       c.Query("color"),
	}

	imgs := h.services.Image.Search(c.Request.Context(), q)

	c.JSON(http.StatusOK, gin.H{
		"images": imgs,
		"query":  query,
		"count":  len(imgs),
	})
}

// Trending handles GET /api/images/trending
func (h *ImageHandler) Trending(c *gin.Context) {
	niche := c.DefaultQuery("niche", "technology")
	limit := intQuery(c, "limit", 12)

	imgs := h.services.Image.Trending(c.Request.Context(), niche, limit)

	c.JSON(http.StatusOK, gin.H{
		"images": imgs,
		"niche":  niche,
		"count":  len(imgs),
	})
}

// Random handles GET /api/images/random
func (h *ImageHandler) Random(c *gin.Context) {
	query := c.Query("q")
	count := intQuery(c, "count", 5)

	imgs := h.services.Image.Random(c.Request.Context(), query, count)

	c.JSON(http.StatusOK, gin.H{
		"images": imgs,
		"count":  len(imgs),
	})
}

// Download handles POST /api/images/download
func (h *ImageHandler) Download(c *gin.Context) {
	var req models.DownloadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	url, err := h.services.Image.TrackDownload(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
