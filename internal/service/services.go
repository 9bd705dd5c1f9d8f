package service

import (
	"context"

	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/images"
	"github.com/article-writer-api/internal/llm"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/repository"
	"github.com/article-writer-api/internal/topics"
	"github.com/article-writer-api/internal/wordpress"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for account operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

// ArticleService defines the interface for the generation pipeline and
// article CRUD
type ArticleService interface {
	Generate(ctx context.Context, userID string, req *models.GenerateRequest) (*models.Article, error)
	List(ctx context.Context, userID string, filter models.ArticleFilter) ([]*models.Article, int, error)
	Get(ctx context.Context, userID, id string) (*models.Article, error)
	Update(ctx context.Context, userID, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, userID, id string) error
	Regenerate(ctx context.Context, userID, id string, req *models.RegenerateRequest) (*models.Article, error)
}

// TopicService defines the interface for topic aggregation. Provider
// failures never surface; degraded calls return fewer results or the
// curated fallback.
type TopicService interface {
	Trending(ctx context.Context, niche, country, timeframe string) []models.Topic
	Search(ctx context.Context, keyword, niche string, limit int) []models.Topic
	Niches() []models.Niche
}

// ImageService defines the interface for image aggregation
type ImageService interface {
	Search(ctx context.Context, q models.ImageQuery) []models.Image
	Trending(ctx context.Context, niche string, limit int) []models.Image
	Random(ctx context.Context, query string, count int) []models.Image
	TrackDownload(ctx context.Context, req *models.DownloadImageRequest) (string, error)
}

// BlogService defines the interface for the WordPress publisher
type BlogService interface {
	Connect(ctx context.Context, userID string, req *models.ConnectBlogRequest) (*models.BlogStatus, error)
	Status(ctx context.Context, userID string) (*models.BlogStatus, error)
	Publish(ctx context.Context, userID string, req *models.PublishRequest) (*models.Article, error)
	UpdatePost(ctx context.Context, userID string, postID int, req *models.UpdatePostRequest) error
	DeletePost(ctx context.Context, userID string, postID int) error
	ListPosts(ctx context.Context, userID string, page, perPage int) ([]wordpress.Post, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Article ArticleService
	Topic   TopicService
	Image   ImageService
	Blog    BlogService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, generator llm.Generator, cfg *config.Config, log zerolog.Logger) *Services {
	topicProviders := topics.NewProviders(cfg.Providers, log)
	imageProviders := images.NewProviders(cfg.Providers, log)

	return &Services{
		Auth:    newAuthService(repos.User, cfg.Auth, log),
		Article: newArticleService(repos, generator, log),
		Topic:   newTopicService(topicProviders, log),
		Image:   newImageService(imageProviders, log),
		Blog: newBlogService(repos, cfg, log, func(siteURL, username, appPassword string) wordpress.API {
			return wordpress.NewClient(siteURL, username, appPassword, cfg.Providers.WordPressTimeout)
		}),
	}
}
