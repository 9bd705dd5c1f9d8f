package mocks

import (
	"context"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/wordpress"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	User        *models.User
	Token       string
	VerifiedID  string
	RegisterErr error
	LoginErr    error
	VerifyErr   error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if m.RegisterErr != nil {
		return nil, "", m.RegisterErr
	}
	return m.User, m.Token, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if m.LoginErr != nil {
		return nil, "", m.LoginErr
	}
	return m.User, m.Token, nil
}

func (m *MockAuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if m.User == nil {
		return nil, apperr.NotFound("user not found")
	}
	return m.User, nil
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	return m.User, nil
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	if m.VerifyErr != nil {
		return "", m.VerifyErr
	}
	if token != m.Token {
		return "", apperr.Auth("invalid token")
	}
	return m.VerifiedID, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	Article     *models.Article
	Articles    []*models.Article
	Total       int
	GenerateErr error
	GetErr      error
	DeleteErr   error
}

func (m *MockArticleService) Generate(ctx context.Context, userID string, req *models.GenerateRequest) (*models.Article, error) {
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.Article, nil
}

func (m *MockArticleService) List(ctx context.Context, userID string, filter models.ArticleFilter) ([]*models.Article, int, error) {
	return m.Articles, m.Total, nil
}

func (m *MockArticleService) Get(ctx context.Context, userID, id string) (*models.Article, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Article, nil
}

func (m *MockArticleService) Update(ctx context.Context, userID, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	return m.Article, nil
}

func (m *MockArticleService) Delete(ctx context.Context, userID, id string) error {
	return m.DeleteErr
}

func (m *MockArticleService) Regenerate(ctx context.Context, userID, id string, req *models.RegenerateRequest) (*models.Article, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Article, nil
}

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	Topics    []models.Topic
	NicheList []models.Niche
}

func (m *MockTopicService) Trending(ctx context.Context, niche, country, timeframe string) []models.Topic {
	return m.Topics
}

func (m *MockTopicService) Search(ctx context.Context, keyword, niche string, limit int) []models.Topic {
	return m.Topics
}

func (m *MockTopicService) Niches() []models.Niche {
	return m.NicheList
}

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	Images      []models.Image
	DownloadURL string
	DownloadErr error
}

func (m *MockImageService) Search(ctx context.Context, q models.ImageQuery) []models.Image {
	return m.Images
}

func (m *MockImageService) Trending(ctx context.Context, niche string, limit int) []models.Image {
	return m.Images
}

func (m *MockImageService) Random(ctx context.Context, query string, count int) []models.Image {
	return m.Images
}

func (m *MockImageService) TrackDownload(ctx context.Context, req *models.DownloadImageRequest) (string, error) {
	if m.DownloadErr != nil {
		return "", m.DownloadErr
	}
	return m.DownloadURL, nil
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	BlogStatus *models.BlogStatus
	Article    *models.Article
	Posts      []wordpress.Post
	ConnectErr error
	PublishErr error
}

func (m *MockBlogService) Connect(ctx context.Context, userID string, req *models.ConnectBlogRequest) (*models.BlogStatus, error) {
	if m.ConnectErr != nil {
		return nil, m.ConnectErr
	}
	return m.BlogStatus, nil
}

func (m *MockBlogService) Status(ctx context.Context, userID string) (*models.BlogStatus, error) {
	return m.BlogStatus, nil
}

func (m *MockBlogService) Publish(ctx context.Context, userID string, req *models.PublishRequest) (*models.Article, error) {
	if m.PublishErr != nil {
		return nil, m.PublishErr
	}
	return m.Article, nil
}

func (m *MockBlogService) UpdatePost(ctx context.Context, userID string, postID int, req *models.UpdatePostRequest) error {
	return nil
}

func (m *MockBlogService) DeletePost(ctx context.Context, userID string, postID int) error {
	return nil
}

func (m *MockBlogService) ListPosts(ctx context.Context, userID string, page, perPage int) ([]wordpress.Post, error) {
	return m.Posts, nil
}
