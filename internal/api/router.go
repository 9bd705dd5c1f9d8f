package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/ratelimit"
	"github.com/article-writer-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// contextUserKey is the gin context key carrying the authenticated user id
const contextUserKey = "user_id"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, limiter ratelimit.Limiter, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	topicHandler := NewTopicHandler(services, log)
	imageHandler := NewImageHandler(services, log)
	blogHandler := NewBlogHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	api.Use(rateLimitMiddleware(limiter, log))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user", authMiddleware(services.Auth), authHandler.GetUser)
			auth.PUT("/profile", authMiddleware(services.Auth), authHandler.UpdateProfile)
		}

		topics := api.Group("/topics", authMiddleware(services.Auth))
		{
			topics.GET("/trending", topicHandler.Trending)
			topics.GET("/search", topicHandler.Search)
			topics.GET("/niches", topicHandler.Niches)
		}

		articles := api.Group("/articles", authMiddleware(services.Auth))
		{
			articles.POST("/generate", articleHandler.Generate)
			articles.GET("", articleHandler.List)
			articles.GET("/:id", articleHandler.Get)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.POST("/:id/regenerate", articleHandler.Regenerate)
		}

		images := api.Group("/images", authMiddleware(services.Auth))
		{
			images.GET("/search", imageHandler.Search)
			images.GET("/trending", imageHandler.Trending)
			images.GET("/random", imageHandler.Random)
			images.POST("/download", imageHandler.Download)
		}

		blog := api.Group("/blog", authMiddleware(services.Auth))
		{
			blog.POST("/connect", blogHandler.Connect)
			blog.GET("/status", blogHandler.Status)
			blog.POST("/post", blogHandler.Publish)
			blog.GET("/posts", blogHandler.ListPosts)
			blog.PUT("/post/:id", blogHandler.UpdatePost)
			blog.DELETE("/post/:id", blogHandler.DeletePost)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "article-writer-api",
	})
}

// authMiddleware verifies the bearer token and stores the user id on
// the request context
func authMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := auth.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(apperr.StatusOf(err), gin.H{"error": apperr.MessageOf(err)})
			return
		}

		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// rateLimitMiddleware enforces the fixed-window per-IP limit
func rateLimitMiddleware(limiter ratelimit.Limiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// A broken limiter store must not take the API down
			log.Error().Err(err).Msg("Rate limiter failed")
			c.Next()
			return
		}
		if !ok {
			seconds := int(retryAfter.Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": seconds,
			})
			return
		}
		c.Next()
	}
}

// currentUserID reads the authenticated user id set by authMiddleware
func currentUserID(c *gin.Context) string {
	return c.GetString(contextUserKey)
}

// abortWithError translates an application error into a JSON response
func abortWithError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperr.StatusOf(err)
	if status >= 500 {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.JSON(status, gin.H{"error": apperr.MessageOf(err)})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
