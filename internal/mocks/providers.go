package mocks

import (
	"context"
	"fmt"

	"github.com/article-writer-api/internal/images"
	"github.com/article-writer-api/internal/llm"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/topics"
	"github.com/article-writer-api/internal/wordpress"
)

// MockGenerator is a mock implementation of llm.Generator
type MockGenerator struct {
	Response      string
	Err           error
	GenerateFunc  func(ctx context.Context, prompt string, wordCount int) (string, error)
	Prompts       []string
	GenerateCalls int
}

// Verify interface compliance
var _ llm.Generator = (*MockGenerator)(nil)

func (m *MockGenerator) Generate(ctx context.Context, prompt string, wordCount int) (string, error) {
	m.GenerateCalls++
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, wordCount)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockTopicProvider is a mock implementation of topics.Provider
type MockTopicProvider struct {
	SourceName  string
	Topics      []models.Topic
	Err         error
	SearchFunc  func(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error)
	SearchCalls int
}

// Verify interface compliance
var _ topics.Provider = (*MockTopicProvider)(nil)

func (m *MockTopicProvider) Name() string {
	return m.SourceName
}

func (m *MockTopicProvider) Trending(ctx context.Context, niche, country, timeframe string) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Topics, nil
}

func (m *MockTopicProvider) Search(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, keyword, niche, limit)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Topics, nil
}

// MockImageProvider is a mock implementation of images.Provider
type MockImageProvider struct {
	SourceName  string
	Images      []models.Image
	Err         error
	SearchCalls int
}

// Verify interface compliance
var _ images.Provider = (*MockImageProvider)(nil)

func (m *MockImageProvider) Name() string {
	return m.SourceName
}

func (m *MockImageProvider) Search(ctx context.Context, q models.ImageQuery) ([]models.Image, error) {
	m.SearchCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Images, nil
}

// MockWordPressAPI is a mock implementation of wordpress.API
type MockWordPressAPI struct {
	MeErr        error
	CreateErr    error
	UploadErr    error
	MediaID      int
	NextPostID   int
	Posts        map[int]*wordpress.PostRequest
	CreatedPosts []*wordpress.PostRequest
	UploadedURLs []string
	DeletedPosts []int
}

// Verify interface compliance
var _ wordpress.API = (*MockWordPressAPI)(nil)

func NewMockWordPressAPI() *MockWordPressAPI {
	return &MockWordPressAPI{
		MediaID:    501,
		NextPostID: 100,
		Posts:      make(map[int]*wordpress.PostRequest),
	}
}

func (m *MockWordPressAPI) Me(ctx context.Context) (*wordpress.UserInfo, error) {
	if m.MeErr != nil {
		return nil, m.MeErr
	}
	return &wordpress.UserInfo{ID: 1, Name: "Test Author"}, nil
}

func (m *MockWordPressAPI) CreatePost(ctx context.Context, post *wordpress.PostRequest) (*wordpress.Post, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.NextPostID++
	m.Posts[m.NextPostID] = post
	m.CreatedPosts = append(m.CreatedPosts, post)
	created := &wordpress.Post{ID: m.NextPostID, Status: post.Status}
	created.Link = fmt.Sprintf("https://example.com/?p=%d", m.NextPostID)
	return created, nil
}

func (m *MockWordPressAPI) UpdatePost(ctx context.Context, postID int, post *wordpress.PostRequest) (*wordpress.Post, error) {
	m.Posts[postID] = post
	return &wordpress.Post{ID: postID, Status: post.Status}, nil
}

func (m *MockWordPressAPI) DeletePost(ctx context.Context, postID int) error {
	m.DeletedPosts = append(m.DeletedPosts, postID)
	delete(m.Posts, postID)
	return nil
}

func (m *MockWordPressAPI) ListPosts(ctx context.Context, page, perPage int) ([]wordpress.Post, error) {
	posts := make([]wordpress.Post, 0, len(m.Posts))
	for id, p := range m.Posts {
		posts = append(posts, wordpress.Post{ID: id, Status: p.Status})
	}
	return posts, nil
}

func (m *MockWordPressAPI) UploadMedia(ctx context.Context, imageURL, filename string) (int, error) {
	if m.UploadErr != nil {
		return 0, m.UploadErr
	}
	m.UploadedURLs = append(m.UploadedURLs, imageURL)
	return m.MediaID, nil
}
