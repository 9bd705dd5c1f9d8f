package repository

import (
	"context"

	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

// ArticleRepository defines the interface for article data operations.
// Every read and write is scoped to the owning user; a non-owned id
// behaves exactly like a missing one.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, userID, id string) (*models.Article, error)
	List(ctx context.Context, userID string, filter models.ArticleFilter) ([]*models.Article, int, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, userID, id string) (bool, error)
	IncrementViews(ctx context.Context, userID, id string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
	}
}
