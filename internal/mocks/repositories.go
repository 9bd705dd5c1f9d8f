package mocks

import (
	"context"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	EmailToUser map[string]*models.User
	CreateError error
	UpdateError error
	UpdateCalls int
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.EmailToUser[email], nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, exists := m.EmailToUser[email]
	return exists, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	CreateError error
	UpdateError error
	DeleteError error
	ViewCounts  map[string]int
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:   make(map[string]*models.Article),
		ViewCounts: make(map[string]int),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, userID, id string) (*models.Article, error) {
	article, ok := m.Articles[id]
	if !ok || article.UserID != userID {
		return nil, nil
	}
	return article, nil
}

func (m *MockArticleRepository) List(ctx context.Context, userID string, filter models.ArticleFilter) ([]*models.Article, int, error) {
	var matched []*models.Article
	for _, a := range m.Articles {
		if a.UserID != userID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Niche != "" && a.Niche != filter.Niche {
			continue
		}
		matched = append(matched, a)
	}
	return matched, len(matched), nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	if m.DeleteError != nil {
		return false, m.DeleteError
	}
	article, ok := m.Articles[id]
	if !ok || article.UserID != userID {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, userID, id string) error {
	m.ViewCounts[id]++
	return nil
}
