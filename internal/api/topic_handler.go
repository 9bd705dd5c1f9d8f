package api

import (
	"net/http"

	"github.com/article-writer-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TopicHandler handles topic discovery endpoints
type TopicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(services *service.Services, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		services: services,
		log:      log.With().Str("handler", "topic").Logger(),
	}
}

// Trending handles GET /api/topics/trending
func (h *TopicHandler) Trending(c *gin.Context) {
	niche := c.DefaultQuery("niche", "technology")
	country := c.DefaultQuery("country", "US")
	timeframe := c.DefaultQuery("timeframe", "daily")

	topics := h.services.Topic.Trending(c.Request.Context(), niche, country, timeframe)

	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"niche":  niche,
		"count":  len(topics),
	})
}

// Search handles GET /api/topics/search
func (h *TopicHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		keyword = c.Query("q")
	}
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter keyword is required"})
		return
	}
	niche := c.Query("niche")
	limit := intQuery(c, "limit", 20)

	topics := h.services.Topic.Search(c.Request.Context(), keyword, niche, limit)

	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"query":  keyword,
		"count":  len(topics),
	})
}

// Niches handles GET /api/topics/niches
func (h *TopicHandler) Niches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"niches": h.services.Topic.Niches()})
}
