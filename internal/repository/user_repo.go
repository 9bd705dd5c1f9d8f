package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	style, _ := json.Marshal(user.WritingStyle)
	blog, _ := json.Marshal(user.BlogSettings)
	prefs, _ := json.Marshal(user.Preferences)
	stats, _ := json.Marshal(user.Stats)

	query := `
		INSERT INTO users (id, email, username, password_hash, active, writing_style, blog_settings, preferences, stats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.Active,
		style, blog, prefs, stats,
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

const userColumns = `id, email, username, password_hash, active, writing_style, blog_settings, preferences, stats, created_at, updated_at`

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// EmailExists checks if a user with the given email exists
func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// UsernameExists checks if a user with the given username exists
func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

// Update persists all mutable user fields
func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	style, _ := json.Marshal(user.WritingStyle)
	blog, _ := json.Marshal(user.BlogSettings)
	prefs, _ := json.Marshal(user.Preferences)
	stats, _ := json.Marshal(user.Stats)

	query := `
		UPDATE users
		SET email = $2, username = $3, password_hash = $4, active = $5,
		    writing_style = $6, blog_settings = $7, preferences = $8, stats = $9, updated_at = $10
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.Active,
		style, blog, prefs, stats, time.Now(),
	)
	return err
}

func (r *userRepo) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var style, blog, prefs, stats []byte

	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.Active,
		&style, &blog, &prefs, &stats, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(style, &user.WritingStyle)
	json.Unmarshal(blog, &user.BlogSettings)
	json.Unmarshal(prefs, &user.Preferences)
	json.Unmarshal(stats, &user.Stats)

	return &user, nil
}
