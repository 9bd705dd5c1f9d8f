package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/repository"
	"github.com/article-writer-api/internal/wordpress"
	"github.com/rs/zerolog"
)

// ClientFactory builds a WordPress client for one site's credentials.
// Injected so tests can substitute a fake remote.
type ClientFactory func(siteURL, username, appPassword string) wordpress.API

// nicheCategories maps each niche to a fixed remote category id.
// Unknown niches fall back to the default category.
var nicheCategories = map[string]int{
	"technology":    2,
	"health":        3,
	"business":      4,
	"lifestyle":     5,
	"entertainment": 6,
	"sports":        7,
	"education":     8,
	"travel":        9,
	"food":          10,
	"fashion":       11,
	"science":       12,
	"politics":      13,
}

const defaultCategory = 1

// blogService is the concrete implementation of BlogService
type blogService struct {
	users     repository.UserRepository
	articles  repository.ArticleRepository
	newClient ClientFactory
	log       zerolog.Logger
}

func newBlogService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger, factory ClientFactory) *blogService {
	return &blogService{
		users:     repos.User,
		articles:  repos.Article,
		newClient: factory,
		log:       log.With().Str("service", "blog").Logger(),
	}
}

// Connect probes the remote users/me endpoint once and persists the
// credentials only when the probe succeeds. A connection flag is never
// stored without a successful real check.
func (s *blogService) Connect(ctx context.Context, userID string, req *models.ConnectBlogRequest) (*models.BlogStatus, error) {
	if req.URL == "" || req.Username == "" || req.AppPassword == "" {
		return nil, apperr.Validation("url, username and app_password are required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	client := s.newClient(req.URL, req.Username, req.AppPassword)
	if _, err := client.Me(ctx); err != nil {
		return nil, s.classifyWordPress(err)
	}

	now := time.Now()
	user.BlogSettings = models.BlogSettings{
		URL:                req.URL,
		Username:           req.Username,
		AppPassword:        req.AppPassword,
		Connected:          true,
		DefaultStatus:      defaultString(req.DefaultStatus, "draft"),
		DefaultImageSource: defaultString(req.DefaultImageSource, "unsplash"),
		ConnectedAt:        &now,
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist blog settings: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("blog_url", req.URL).Msg("Blog connected")
	return s.statusOf(user), nil
}

// Status reports connection state without credentials
func (s *blogService) Status(ctx context.Context, userID string) (*models.BlogStatus, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return s.statusOf(user), nil
}

// Publish maps an owned article to a remote post. The featured image
// upload is best-effort; a failed upload never aborts the post. Remote
// identity is written back onto the article only after success.
func (s *blogService) Publish(ctx context.Context, userID string, req *models.PublishRequest) (*models.Article, error) {
	if req.ArticleID == "" {
		return nil, apperr.Validation("article_id is required")
	}

	user, client, err := s.connectedClient(ctx, userID)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.GetByID(ctx, userID, req.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}

	status := defaultString(req.Status, user.BlogSettings.DefaultStatus)
	status = defaultString(status, "draft")

	category, ok := nicheCategories[article.Niche]
	if !ok {
		category = defaultCategory
	}

	// Best-effort featured image: a failed upload yields no featured
	// media, not a failed post.
	var featured *int
	imageURL := req.FeaturedImageURL
	if imageURL == "" && len(article.Images) > 0 {
		imageURL = article.Images[0].URL
	}
	if imageURL != "" {
		mediaID, err := client.UploadMedia(ctx, imageURL, article.ID+".jpg")
		if err != nil {
			s.log.Warn().Err(err).Str("article_id", article.ID).Msg("Featured image upload failed")
		} else {
			featured = &mediaID
		}
	}

	post, err := client.CreatePost(ctx, &wordpress.PostRequest{
		Title:         article.Title,
		Content:       article.Content,
		Status:        status,
		Categories:    []int{category},
		FeaturedMedia: featured,
	})
	if err != nil {
		return nil, s.classifyWordPress(err)
	}

	now := time.Now()
	article.BlogPost = &models.BlogPostRef{
		PostID:          post.ID,
		URL:             post.Link,
		Status:          post.Status,
		FeaturedImageID: featured,
		PublishedAt:     &now,
	}
	if post.Status == "publish" {
		article.Status = "published"
		article.PublishedAt = &now
	}
	article.UpdatedAt = now

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to persist article: %w", err)
	}

	user.Stats.ArticlesPublished++
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to update user stats")
	}

	s.log.Info().
		Str("article_id", article.ID).
		Int("post_id", post.ID).
		Str("status", post.Status).
		Msg("Article published to blog")

	return article, nil
}

// UpdatePost proxies a partial post update to the remote API
func (s *blogService) UpdatePost(ctx context.Context, userID string, postID int, req *models.UpdatePostRequest) error {
	_, client, err := s.connectedClient(ctx, userID)
	if err != nil {
		return err
	}

	update := &wordpress.PostRequest{}
	if req.Title != nil {
		update.Title = *req.Title
	}
	if req.Content != nil {
		update.Content = *req.Content
	}
	if req.Status != nil {
		update.Status = *req.Status
	}

	if _, err := client.UpdatePost(ctx, postID, update); err != nil {
		return s.classifyWordPress(err)
	}
	return nil
}

// DeletePost proxies a post deletion to the remote API
func (s *blogService) DeletePost(ctx context.Context, userID string, postID int) error {
	_, client, err := s.connectedClient(ctx, userID)
	if err != nil {
		return err
	}
	if err := client.DeletePost(ctx, postID); err != nil {
		return s.classifyWordPress(err)
	}
	return nil
}

// ListPosts proxies a post listing to the remote API
func (s *blogService) ListPosts(ctx context.Context, userID string, page, perPage int) ([]wordpress.Post, error) {
	_, client, err := s.connectedClient(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := client.ListPosts(ctx, page, perPage)
	if err != nil {
		return nil, s.classifyWordPress(err)
	}
	return posts, nil
}

// connectedClient loads the caller and builds a client from the stored
// credentials, requiring a previously connected blog.
func (s *blogService) connectedClient(ctx context.Context, userID string) (*models.User, wordpress.API, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, nil, apperr.NotFound("user not found")
	}
	if !user.BlogSettings.Connected {
		return nil, nil, apperr.Validation("no blog connected")
	}
	client := s.newClient(user.BlogSettings.URL, user.BlogSettings.Username, user.BlogSettings.AppPassword)
	return user, client, nil
}

// classifyWordPress preserves the fixed three-way error messages while
// mapping remote failures into the application taxonomy.
func (s *blogService) classifyWordPress(err error) error {
	var wpErr *wordpress.Error
	if errors.As(err, &wpErr) {
		switch wpErr.Kind {
		case wordpress.ErrKindInvalidCredentials:
			return apperr.Auth(wpErr.Error())
		case wordpress.ErrKindUnavailable:
			return apperr.NotFound(wpErr.Error())
		default:
			return apperr.Upstream(wpErr.Error(), err)
		}
	}
	return apperr.Upstream("Failed to connect to WordPress site.", err)
}

func (s *blogService) statusOf(user *models.User) *models.BlogStatus {
	return &models.BlogStatus{
		Connected:   user.BlogSettings.Connected,
		URL:         user.BlogSettings.URL,
		Username:    user.BlogSettings.Username,
		ConnectedAt: user.BlogSettings.ConnectedAt,
	}
}

func defaultString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
