package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/article-writer-api/internal/models"
)

const newsBaseURL = "https://newsapi.org/v2"

// NewsProvider queries the NewsAPI headline and search endpoints
type NewsProvider struct {
	apiKey string
	client *http.Client
}

// NewNewsProvider creates a news-headline topic provider
func NewNewsProvider(apiKey string, timeout time.Duration) *NewsProvider {
	return &NewsProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the name of this provider
func (p *NewsProvider) Name() string {
	return "newsapi"
}

// newsCategories maps niches onto NewsAPI's fixed category set
var newsCategories = map[string]string{
	"technology":    "technology",
	"health":        "health",
	"business":      "business",
	"entertainment": "entertainment",
	"sports":        "sports",
	"science":       "science",
}

type newsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Trending fetches top headlines for the niche's category
func (p *NewsProvider) Trending(ctx context.Context, niche, country, timeframe string) ([]models.Topic, error) {
	params := url.Values{}
	params.Set("apiKey", p.apiKey)
	params.Set("pageSize", "20")
	if country != "" {
		params.Set("country", country)
	} else {
		params.Set("country", "us")
	}
	category, ok := newsCategories[niche]
	if !ok {
		category = "general"
	}
	params.Set("category", category)

	return p.fetch(ctx, newsBaseURL+"/top-headlines?"+params.Encode())
}

// Search queries the everything endpoint by keyword
func (p *NewsProvider) Search(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := keyword
	if niche != "" {
		q = keyword + " " + niche
	}

	params := url.Values{}
	params.Set("apiKey", p.apiKey)
	params.Set("q", q)
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(limit))

	return p.fetch(ctx, newsBaseURL+"/everything?"+params.Encode())
}

func (p *NewsProvider) fetch(ctx context.Context, fullURL string) ([]models.Topic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create news request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute news request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news request failed with status: %d", resp.StatusCode)
	}

	var parsed newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse news response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("news request returned status %q", parsed.Status)
	}

	var topics []models.Topic
	for i, a := range parsed.Articles {
		if a.Title == "" {
			continue
		}
		topic := models.Topic{
			Title:       a.Title,
			Description: a.Description,
			Source:      p.Name(),
			Relevance:   rankScore(0.9, i),
			URL:         a.URL,
		}
		if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			topic.PublishedAt = &ts
		}
		topics = append(topics, topic)
	}

	return topics, nil
}
