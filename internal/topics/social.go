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

const socialBaseURL = "https://api.twitter.com/2"

// SocialProvider queries recent tweet search as a social trend signal
type SocialProvider struct {
	bearerToken string
	client      *http.Client
}

// NewSocialProvider creates a social-trend topic provider
func NewSocialProvider(bearerToken string, timeout time.Duration) *SocialProvider {
	return &SocialProvider{
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: timeout},
	}
}

// Name returns the name of this provider
func (p *SocialProvider) Name() string {
	return "twitter"
}

type socialResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			RetweetCount int `json:"retweet_count"`
			LikeCount    int `json:"like_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

// Trending searches recent popular tweets for the niche keyword
func (p *SocialProvider) Trending(ctx context.Context, niche, country, timeframe string) ([]models.Topic, error) {
	query := niche + " -is:retweet lang:en"
	return p.search(ctx, query, 20)
}

// Search searches recent tweets by keyword
func (p *SocialProvider) Search(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error) {
	query := keyword + " -is:retweet lang:en"
	return p.search(ctx, query, limit)
}

func (p *SocialProvider) search(ctx context.Context, query string, limit int) ([]models.Topic, error) {
	// The recent search endpoint requires 10 <= max_results <= 100
	if limit < 10 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(limit))
	params.Set("tweet.fields", "created_at,public_metrics")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, socialBaseURL+"/tweets/search/recent?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create twitter request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.bearerToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute twitter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter request failed with status: %d", resp.StatusCode)
	}

	var parsed socialResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse twitter response: %w", err)
	}

	var topics []models.Topic
	for i, tweet := range parsed.Data {
		topic := models.Topic{
			Title:     truncate(tweet.Text, 120),
			Source:    p.Name(),
			Relevance: rankScore(0.7, i),
			URL:       "https://twitter.com/i/web/status/" + tweet.ID,
			Metadata: map[string]string{
				"retweets": strconv.Itoa(tweet.PublicMetrics.RetweetCount),
				"likes":    strconv.Itoa(tweet.PublicMetrics.LikeCount),
			},
		}
		if ts, err := time.Parse(time.RFC3339, tweet.CreatedAt); err == nil {
			topic.PublishedAt = &ts
		}
		topics = append(topics, topic)
	}

	return topics, nil
}
