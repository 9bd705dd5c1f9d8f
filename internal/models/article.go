package models

import (
	"time"
)

// Article represents a generated article owned by one user
type Article struct {
	ID      string `json:"id" db:"id"`
	UserID  string `json:"user_id" db:"user_id"`
	Topic   string `json:"topic" db:"topic"`
	Niche   string `json:"niche" db:"niche"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`

	// WritingStyle is a snapshot copied at generation time. Editing the
	// user's stored defaults never changes past articles.
	WritingStyle WritingStyle `json:"writing_style" db:"-"`

	WordCount int      `json:"word_count" db:"word_count"`
	Tone      string   `json:"tone" db:"tone"`
	Status    string   `json:"status" db:"status"`
	Tags      []string `json:"tags" db:"-"`
	Keywords  []string `json:"keywords" db:"-"`

	SEOData   *SEOData       `json:"seo_data,omitempty" db:"-"`
	Images    []ArticleImage `json:"images" db:"-"`
	BlogPost  *BlogPostRef   `json:"blog_post,omitempty" db:"-"`
	Analytics Analytics      `json:"analytics" db:"-"`

	GeneratedAt   time.Time  `json:"generated_at" db:"generated_at"`
	RegeneratedAt *time.Time `json:"regenerated_at,omitempty" db:"regenerated_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty" db:"published_at"`
	ArchivedAt    *time.Time `json:"archived_at,omitempty" db:"archived_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// ArticleImage is an image attached to an article, in display order
type ArticleImage struct {
	URL             string `json:"url"`
	Alt             string `json:"alt,omitempty"`
	Caption         string `json:"caption,omitempty"`
	Position        int    `json:"position"`
	Source          string `json:"source,omitempty"`
	Photographer    string `json:"photographer,omitempty"`
	PhotographerURL string `json:"photographer_url,omitempty"`
}

// BlogPostRef tracks the remote post identity after a successful publish
type BlogPostRef struct {
	PostID          int        `json:"post_id"`
	URL             string     `json:"url"`
	Status          string     `json:"status"`
	FeaturedImageID *int       `json:"featured_image_id,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}

// SEOData holds optional SEO scores for an article
type SEOData struct {
	Score            int    `json:"score,omitempty"`
	ReadabilityScore int    `json:"readability_score,omitempty"`
	MetaDescription  string `json:"meta_description,omitempty"`
	FocusKeyword     string `json:"focus_keyword,omitempty"`
}

// Analytics holds monotonically incremented counters
type Analytics struct {
	Views  int `json:"views"`
	Shares int `json:"shares"`
	Likes  int `json:"likes"`
}

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[string]bool{
	"draft":     true,
	"review":    true,
	"published": true,
	"archived":  true,
}

// ValidNiches defines the closed set of content niches
var ValidNiches = map[string]bool{
	"technology":    true,
	"health":        true,
	"business":      true,
	"lifestyle":     true,
	"entertainment": true,
	"sports":        true,
	"education":     true,
	"travel":        true,
	"food":          true,
	"fashion":       true,
	"science":       true,
	"politics":      true,
}

// NicheOrder lists the niches in presentation order
var NicheOrder = []string{
	"technology", "health", "business", "lifestyle", "entertainment", "sports",
	"education", "travel", "food", "fashion", "science", "politics",
}

// GenerateRequest is the payload for POST /api/articles/generate
type GenerateRequest struct {
	Topic        string         `json:"topic"`
	Niche        string         `json:"niche"`
	WritingStyle *StyleOverride `json:"writing_style,omitempty"`
	Tone         string         `json:"tone,omitempty"`
	WordCount    int            `json:"word_count,omitempty"`
	CustomPrompt string         `json:"custom_prompt,omitempty"`
}

// RegenerateRequest is the payload for POST /api/articles/:id/regenerate.
// Absent fields fall back to the article's stored values.
type RegenerateRequest struct {
	WritingStyle *StyleOverride `json:"writing_style,omitempty"`
	Tone         string         `json:"tone,omitempty"`
	WordCount    int            `json:"word_count,omitempty"`
	CustomPrompt string         `json:"custom_prompt,omitempty"`
}

// UpdateArticleRequest is the payload for PUT /api/articles/:id
type UpdateArticleRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ArticleFilter holds list query parameters
type ArticleFilter struct {
	Status string
	Niche  string
	Page   int
	Limit  int
}
