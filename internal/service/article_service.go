package service

import (
	"context"
	"fmt"
	"time"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/llm"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/parser"
	"github.com/article-writer-api/internal/prompt"
	"github.com/article-writer-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	users     repository.UserRepository
	articles  repository.ArticleRepository
	generator llm.Generator
	log       zerolog.Logger
}

func newArticleService(repos *repository.Repositories, generator llm.Generator, log zerolog.Logger) *articleService {
	return &articleService{
		users:     repos.User,
		articles:  repos.Article,
		generator: generator,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// Generate runs the full pipeline: merge style, build prompt, call the
// model once, parse, persist. Generation is all-or-nothing.
func (s *articleService) Generate(ctx context.Context, userID string, req *models.GenerateRequest) (*models.Article, error) {
	if req.Topic == "" {
		return nil, apperr.Validation("topic is required")
	}
	if req.Niche == "" {
		return nil, apperr.Validation("niche is required")
	}
	if !models.ValidNiches[req.Niche] {
		return nil, apperr.Validation("invalid niche")
	}
	if req.WordCount != 0 && (req.WordCount < models.MinWordCount || req.WordCount > models.MaxWordCount) {
		return nil, apperr.Validation(fmt.Sprintf("word count must be between %d and %d", models.MinWordCount, models.MaxWordCount))
	}
	if req.WritingStyle != nil {
		if err := validateStyleOverride(req.WritingStyle); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	// Request-level fields override the stored style key-by-key; the
	// merged result is snapshotted onto the article.
	style := prompt.MergeStyle(user.WritingStyle, req.WritingStyle)

	tone := req.Tone
	if tone == "" {
		tone = user.Preferences.DefaultTone
	}
	wordCount := req.WordCount
	if wordCount == 0 {
		wordCount = user.Preferences.DefaultWordCount
	}
	if wordCount == 0 {
		wordCount = prompt.DefaultWordCount
	}
	if tone == "" {
		tone = prompt.DefaultTone
	}

	parsed, err := s.runPipeline(ctx, prompt.Params{
		Topic:        req.Topic,
		Niche:        req.Niche,
		Style:        style,
		Tone:         tone,
		WordCount:    wordCount,
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		ID:           uuid.New().String(),
		UserID:       userID,
		Topic:        req.Topic,
		Niche:        req.Niche,
		Title:        parsed.Title,
		Content:      parsed.Content,
		WritingStyle: style,
		WordCount:    parsed.WordCount,
		Tone:         tone,
		Status:       "draft",
		GeneratedAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to persist article: %w", err)
	}

	// Stats only move on the generation path
	user.Stats.ArticlesGenerated++
	user.Stats.WordsGenerated += parsed.WordCount
	user.Stats.LastGeneratedAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to update user stats")
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("niche", article.Niche).
		Int("word_count", article.WordCount).
		Msg("Article generated")

	return article, nil
}

// Regenerate reruns the pipeline against an existing article, replacing
// title/content/wordCount/tone/style in place. Identity is preserved:
// id, createdAt, images, blogPost and analytics are untouched.
func (s *articleService) Regenerate(ctx context.Context, userID, id string, req *models.RegenerateRequest) (*models.Article, error) {
	article, err := s.mustGet(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.WritingStyle != nil {
		if err := validateStyleOverride(req.WritingStyle); err != nil {
			return nil, err
		}
	}
	if req.WordCount != 0 && (req.WordCount < models.MinWordCount || req.WordCount > models.MaxWordCount) {
		return nil, apperr.Validation(fmt.Sprintf("word count must be between %d and %d", models.MinWordCount, models.MaxWordCount))
	}

	// Absent request fields fall back to the article's stored values.
	// Topic and niche are never replaced.
	style := prompt.MergeStyle(article.WritingStyle, req.WritingStyle)
	tone := req.Tone
	if tone == "" {
		tone = article.Tone
	}
	wordCount := req.WordCount
	if wordCount == 0 {
		wordCount = article.WordCount
	}

	parsed, err := s.runPipeline(ctx, prompt.Params{
		Topic:        article.Topic,
		Niche:        article.Niche,
		Style:        style,
		Tone:         tone,
		WordCount:    wordCount,
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	article.Title = parsed.Title
	article.Content = parsed.Content
	article.WordCount = parsed.WordCount
	article.Tone = tone
	article.WritingStyle = style
	article.RegeneratedAt = &now
	article.UpdatedAt = now

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to persist article: %w", err)
	}

	s.log.Info().Str("article_id", article.ID).Msg("Article regenerated")
	return article, nil
}

// List returns a page of the caller's articles with the total count
func (s *articleService) List(ctx context.Context, userID string, filter models.ArticleFilter) ([]*models.Article, int, error) {
	if filter.Status != "" && !models.ValidStatuses[filter.Status] {
		return nil, 0, apperr.Validation("invalid status filter")
	}
	if filter.Niche != "" && !models.ValidNiches[filter.Niche] {
		return nil, 0, apperr.Validation("invalid niche filter")
	}

	articles, total, err := s.articles.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, total, nil
}

// Get returns one owned article and bumps its views counter
func (s *articleService) Get(ctx context.Context, userID, id string) (*models.Article, error) {
	article, err := s.mustGet(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.articles.IncrementViews(ctx, userID, id); err != nil {
		s.log.Error().Err(err).Str("article_id", id).Msg("Failed to increment views")
	} else {
		article.Analytics.Views++
	}
	return article, nil
}

// Update applies a partial edit to title/content/status. Editing content
// recomputes the word count with the canonical counter.
func (s *articleService) Update(ctx context.Context, userID, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.mustGet(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperr.Validation("title must not be empty")
		}
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
		article.WordCount = parser.CountWords(*req.Content)
	}
	if req.Status != nil {
		if !models.ValidStatuses[*req.Status] {
			return nil, apperr.Validation("invalid status")
		}
		now := time.Now()
		switch *req.Status {
		case "published":
			if article.PublishedAt == nil {
				article.PublishedAt = &now
			}
		case "archived":
			article.ArchivedAt = &now
		}
		article.Status = *req.Status
	}
	article.UpdatedAt = time.Now()

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to persist article: %w", err)
	}
	return article, nil
}

// Delete removes one owned article
func (s *articleService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.articles.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if !deleted {
		return apperr.NotFound("article not found")
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// runPipeline builds the prompt, invokes the model once and parses the
// output. Provider failures surface to the caller unretried.
func (s *articleService) runPipeline(ctx context.Context, params prompt.Params) (parser.Parsed, error) {
	promptText := prompt.Build(params)

	raw, err := s.generator.Generate(ctx, promptText, params.WordCount)
	if err != nil {
		s.log.Error().Err(err).Str("topic", params.Topic).Msg("Generation failed")
		return parser.Parsed{}, apperr.Upstream("article generation failed", err)
	}

	return parser.Parse(raw), nil
}

// mustGet loads an owned article or reports NotFound; ownership misses
// are indistinguishable from missing rows.
func (s *articleService) mustGet(ctx context.Context, userID, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if article == nil {
		return nil, apperr.NotFound("article not found")
	}
	return article, nil
}
