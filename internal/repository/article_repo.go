package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, user_id, topic, niche, title, content, writing_style, word_count, tone, status,
	tags, keywords, seo_data, images, blog_post, analytics,
	generated_at, regenerated_at, published_at, archived_at, created_at, updated_at`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	style, _ := json.Marshal(article.WritingStyle)
	tags := marshalSlice(article.Tags)
	keywords := marshalSlice(article.Keywords)
	seo, _ := json.Marshal(article.SEOData)
	images := marshalImages(article.Images)
	blogPost, _ := json.Marshal(article.BlogPost)
	analytics, _ := json.Marshal(article.Analytics)

	query := `
		INSERT INTO articles (id, user_id, topic, niche, title, content, writing_style, word_count, tone, status,
			tags, keywords, seo_data, images, blog_post, analytics,
			generated_at, regenerated_at, published_at, archived_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.UserID, article.Topic, article.Niche, article.Title, article.Content,
		style, article.WordCount, article.Tone, article.Status,
		tags, keywords, seo, images, blogPost, analytics,
		article.GeneratedAt, article.RegeneratedAt, article.PublishedAt, article.ArchivedAt,
		article.CreatedAt, article.UpdatedAt,
	)
	return err
}

// GetByID retrieves an article scoped to its owner
func (r *articleRepo) GetByID(ctx context.Context, userID, id string) (*models.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1 AND user_id = $2`, articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query, id, userID))
}

// List retrieves a page of the owner's articles, newest first
func (r *articleRepo) List(ctx context.Context, userID string, filter models.ArticleFilter) ([]*models.Article, int, error) {
	where := []string{"user_id = $1"}
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Niche != "" {
		args = append(args, filter.Niche)
		where = append(where, "niche = $"+strconv.Itoa(len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM articles WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`SELECT %s FROM articles WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		articleColumns, whereClause, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, article)
	}
	return articles, total, rows.Err()
}

// Update persists all mutable article fields
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	style, _ := json.Marshal(article.WritingStyle)
	tags := marshalSlice(article.Tags)
	keywords := marshalSlice(article.Keywords)
	seo, _ := json.Marshal(article.SEOData)
	images := marshalImages(article.Images)
	blogPost, _ := json.Marshal(article.BlogPost)
	analytics, _ := json.Marshal(article.Analytics)

	query := `
		UPDATE articles
		SET topic = $3, niche = $4, title = $5, content = $6, writing_style = $7, word_count = $8,
		    tone = $9, status = $10, tags = $11, keywords = $12, seo_data = $13, images = $14,
		    blog_post = $15, analytics = $16, regenerated_at = $17, published_at = $18,
		    archived_at = $19, updated_at = $20
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.UserID, article.Topic, article.Niche, article.Title, article.Content,
		style, article.WordCount, article.Tone, article.Status,
		tags, keywords, seo, images, blogPost, analytics,
		article.RegeneratedAt, article.PublishedAt, article.ArchivedAt, time.Now(),
	)
	return err
}

// Delete removes an article scoped to its owner. Returns false when no
// row matched.
func (r *articleRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// IncrementViews bumps the views counter inside the analytics document
func (r *articleRepo) IncrementViews(ctx context.Context, userID, id string) error {
	query := `
		UPDATE articles
		SET analytics = jsonb_set(analytics, '{views}', (COALESCE((analytics->>'views')::int, 0) + 1)::text::jsonb)
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	return err
}

// rowScanner covers both sql.Row and sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var style, tags, keywords, seo, images, blogPost, analytics []byte
	var regeneratedAt, publishedAt, archivedAt sql.NullTime

	err := row.Scan(
		&article.ID, &article.UserID, &article.Topic, &article.Niche, &article.Title, &article.Content,
		&style, &article.WordCount, &article.Tone, &article.Status,
		&tags, &keywords, &seo, &images, &blogPost, &analytics,
		&article.GeneratedAt, &regeneratedAt, &publishedAt, &archivedAt,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(style, &article.WritingStyle)
	json.Unmarshal(tags, &article.Tags)
	json.Unmarshal(keywords, &article.Keywords)
	if len(seo) > 0 && string(seo) != "null" {
		json.Unmarshal(seo, &article.SEOData)
	}
	json.Unmarshal(images, &article.Images)
	if len(blogPost) > 0 && string(blogPost) != "null" {
		json.Unmarshal(blogPost, &article.BlogPost)
	}
	json.Unmarshal(analytics, &article.Analytics)

	if regeneratedAt.Valid {
		article.RegeneratedAt = &regeneratedAt.Time
	}
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	if archivedAt.Valid {
		article.ArchivedAt = &archivedAt.Time
	}

	return &article, nil
}

func marshalSlice(s []string) []byte {
	if s == nil {
		return []byte("[]")
	}
	data, _ := json.Marshal(s)
	return data
}

func marshalImages(imgs []models.ArticleImage) []byte {
	if imgs == nil {
		return []byte("[]")
	}
	data, _ := json.Marshal(imgs)
	return data
}
