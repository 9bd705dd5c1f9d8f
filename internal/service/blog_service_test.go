package service

import (
	"context"
	"testing"
	"time"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/mocks"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/repository"
	"github.com/article-writer-api/internal/wordpress"
	"github.com/rs/zerolog"
)

func newTestBlogService(remote *mocks.MockWordPressAPI) (*blogService, *mocks.MockUserRepository, *mocks.MockArticleRepository) {
	userRepo := mocks.NewMockUserRepository()
	articleRepo := mocks.NewMockArticleRepository()
	repos := &repository.Repositories{User: userRepo, Article: articleRepo}
	factory := func(siteURL, username, appPassword string) wordpress.API { return remote }
	return newBlogService(repos, nil, zerolog.Nop(), factory), userRepo, articleRepo
}

func seedConnectedUser(repo *mocks.MockUserRepository) *models.User {
	now := time.Now()
	user := &models.User{
		ID:     "user-1",
		Email:  "writer@test.com",
		Active: true,
		BlogSettings: models.BlogSettings{
			URL:           "https://myblog.example.com",
			Username:      "writer",
			AppPassword:   "abcd efgh",
			Connected:     true,
			DefaultStatus: "draft",
			ConnectedAt:   &now,
		},
	}
	repo.Create(context.Background(), user)
	return user
}

func TestBlogService_Connect_PersistsOnlyOnSuccess(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	svc, userRepo, _ := newTestBlogService(remote)
	userRepo.Create(context.Background(), &models.User{ID: "user-1", Email: "writer@test.com", Active: true})

	status, err := svc.Connect(context.Background(), "user-1", &models.ConnectBlogRequest{
		URL:         "https://myblog.example.com",
		Username:    "writer",
		AppPassword: "abcd efgh",
	})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if !status.Connected {
		t.Error("Status should report connected")
	}

	user := userRepo.Users["user-1"]
	if !user.BlogSettings.Connected || user.BlogSettings.URL != "https://myblog.example.com" {
		t.Errorf("Credentials should be persisted after a successful probe, got %+v", user.BlogSettings)
	}
	if user.BlogSettings.DefaultStatus != "draft" {
		t.Errorf("Default post status should be draft, got %q", user.BlogSettings.DefaultStatus)
	}
}

func TestBlogService_Connect_ProbeFailureLeavesNothing(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	remote.MeErr = &wordpress.Error{Kind: wordpress.ErrKindInvalidCredentials}
	svc, userRepo, _ := newTestBlogService(remote)
	userRepo.Create(context.Background(), &models.User{ID: "user-1", Email: "writer@test.com", Active: true})

	_, err := svc.Connect(context.Background(), "user-1", &models.ConnectBlogRequest{
		URL:         "https://myblog.example.com",
		Username:    "writer",
		AppPassword: "wrong",
	})

	if apperr.KindOf(err) != apperr.KindAuth {
		t.Fatalf("Invalid credentials should map to an auth error, got %v", err)
	}
	if apperr.MessageOf(err) != "Invalid credentials. Please check your username and application password." {
		t.Errorf("Error message text should be preserved, got %q", apperr.MessageOf(err))
	}
	if userRepo.Users["user-1"].BlogSettings.Connected {
		t.Error("Failed probe must not persist a connection")
	}
}

func TestBlogService_Connect_ErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		kind wordpress.ErrKind
		want apperr.Kind
	}{
		{"invalid credentials", wordpress.ErrKindInvalidCredentials, apperr.KindAuth},
		{"rest api missing", wordpress.ErrKindUnavailable, apperr.KindNotFound},
		{"network failure", wordpress.ErrKindConnection, apperr.KindUpstream},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			remote := mocks.NewMockWordPressAPI()
			remote.MeErr = &wordpress.Error{Kind: c.kind}
			svc, userRepo, _ := newTestBlogService(remote)
			userRepo.Create(context.Background(), &models.User{ID: "user-1", Email: "writer@test.com", Active: true})

			_, err := svc.Connect(context.Background(), "user-1", &models.ConnectBlogRequest{
				URL:         "https://myblog.example.com",
				Username:    "writer",
				AppPassword: "pw",
			})
			if apperr.KindOf(err) != c.want {
				t.Errorf("Expected kind %v, got %v", c.want, err)
			}
		})
	}
}

func TestBlogService_Publish(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	svc, userRepo, articleRepo := newTestBlogService(remote)
	seedConnectedUser(userRepo)
	articleRepo.Create(context.Background(), &models.Article{
		ID:      "article-1",
		UserID:  "user-1",
		Niche:   "health",
		Title:   "Sleep Hygiene",
		Content: "Body.",
		Status:  "draft",
		Images:  []models.ArticleImage{{URL: "https://img/cover"}},
	})

	article, err := svc.Publish(context.Background(), "user-1", &models.PublishRequest{
		ArticleID: "article-1",
		Status:    "publish",
	})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if article.BlogPost == nil {
		t.Fatal("Remote post identity should be written back")
	}
	if article.BlogPost.PostID == 0 || article.BlogPost.URL == "" {
		t.Errorf("Post ref should carry remote id and link, got %+v", article.BlogPost)
	}
	if article.Status != "published" {
		t.Errorf("A publish-status post should mark the article published, got %q", article.Status)
	}
	if len(remote.CreatedPosts) != 1 {
		t.Fatalf("Expected one remote post, got %d", len(remote.CreatedPosts))
	}
	post := remote.CreatedPosts[0]
	if len(post.Categories) != 1 || post.Categories[0] != 3 {
		t.Errorf("Health niche should map to category 3, got %v", post.Categories)
	}
	if post.FeaturedMedia == nil || *post.FeaturedMedia != remote.MediaID {
		t.Error("Attached article image should become the featured media")
	}
	if userRepo.Users["user-1"].Stats.ArticlesPublished != 1 {
		t.Errorf("Publish count should move, got %d", userRepo.Users["user-1"].Stats.ArticlesPublished)
	}
}

func TestBlogService_Publish_ImageUploadIsBestEffort(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	remote.UploadErr = &wordpress.Error{Kind: wordpress.ErrKindConnection}
	svc, userRepo, articleRepo := newTestBlogService(remote)
	seedConnectedUser(userRepo)
	articleRepo.Create(context.Background(), &models.Article{
		ID:     "article-1",
		UserID: "user-1",
		Niche:  "technology",
		Title:  "T",
		Status: "draft",
		Images: []models.ArticleImage{{URL: "https://img/cover"}},
	})

	article, err := svc.Publish(context.Background(), "user-1", &models.PublishRequest{ArticleID: "article-1"})
	if err != nil {
		t.Fatalf("A failed image upload must not abort the post: %v", err)
	}
	if article.BlogPost == nil {
		t.Fatal("Post should still be created")
	}
	if article.BlogPost.FeaturedImageID != nil {
		t.Error("Failed upload should leave no featured image")
	}
}

func TestBlogService_Publish_PostFailureWritesNothingBack(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	remote.CreateErr = &wordpress.Error{Kind: wordpress.ErrKindConnection}
	svc, userRepo, articleRepo := newTestBlogService(remote)
	seedConnectedUser(userRepo)
	articleRepo.Create(context.Background(), &models.Article{
		ID:     "article-1",
		UserID: "user-1",
		Niche:  "technology",
		Title:  "T",
		Status: "draft",
	})

	_, err := svc.Publish(context.Background(), "user-1", &models.PublishRequest{ArticleID: "article-1"})

	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("Expected upstream error, got %v", err)
	}
	if articleRepo.Articles["article-1"].BlogPost != nil {
		t.Error("Failed post creation must not write a post ref back")
	}
}

func TestBlogService_Publish_UnknownNicheUsesDefaultCategory(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	svc, userRepo, articleRepo := newTestBlogService(remote)
	seedConnectedUser(userRepo)
	articleRepo.Create(context.Background(), &models.Article{
		ID:     "article-1",
		UserID: "user-1",
		Niche:  "",
		Title:  "T",
		Status: "draft",
	})

	if _, err := svc.Publish(context.Background(), "user-1", &models.PublishRequest{ArticleID: "article-1"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if got := remote.CreatedPosts[0].Categories[0]; got != defaultCategory {
		t.Errorf("Unknown niche should fall back to category %d, got %d", defaultCategory, got)
	}
}

func TestBlogService_RequiresConnection(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	svc, userRepo, _ := newTestBlogService(remote)
	userRepo.Create(context.Background(), &models.User{ID: "user-1", Email: "writer@test.com", Active: true})

	_, err := svc.Publish(context.Background(), "user-1", &models.PublishRequest{ArticleID: "article-1"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Publishing without a connected blog should be rejected, got %v", err)
	}
	if err := svc.DeletePost(context.Background(), "user-1", 7); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Post operations require a connected blog, got %v", err)
	}
}

func TestBlogService_Status_OmitsCredentials(t *testing.T) {
	remote := mocks.NewMockWordPressAPI()
	svc, userRepo, _ := newTestBlogService(remote)
	seedConnectedUser(userRepo)

	status, err := svc.Status(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.Connected || status.URL != "https://myblog.example.com" {
		t.Errorf("Unexpected status: %+v", status)
	}
}
