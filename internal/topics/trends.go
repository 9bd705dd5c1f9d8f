package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/article-writer-api/internal/models"
)

const trendsBaseURL = "https://trends.google.com/trends/api/dailytrends"

// TrendsProvider reads Google's daily trending searches feed. It needs
// no API key and is always part of the fan-out.
type TrendsProvider struct {
	client *http.Client
}

// NewTrendsProvider creates a trend-signal topic provider
func NewTrendsProvider(timeout time.Duration) *TrendsProvider {
	return &TrendsProvider{
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the name of this provider
func (p *TrendsProvider) Name() string {
	return "google-trends"
}

type trendsResponse struct {
	Default struct {
		TrendingSearchesDays []struct {
			TrendingSearches []struct {
				Title struct {
					Query string `json:"query"`
				} `json:"title"`
				FormattedTraffic string `json:"formattedTraffic"`
				Articles         []struct {
					Title   string `json:"title"`
					URL     string `json:"url"`
					Snippet string `json:"snippet"`
				} `json:"articles"`
			} `json:"trendingSearches"`
		} `json:"trendingSearchesDays"`
	} `json:"default"`
}

// Trending fetches the daily trending searches for a country
func (p *TrendsProvider) Trending(ctx context.Context, niche, country, timeframe string) ([]models.Topic, error) {
	geo := strings.ToUpper(country)
	if geo == "" {
		geo = "US"
	}

	params := url.Values{}
	params.Set("hl", "en-US")
	params.Set("tz", "0")
	params.Set("geo", geo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trendsBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create trends request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute trends request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read trends response: %w", err)
	}

	// The feed prefixes its JSON payload with an anti-hijacking marker
	payload := strings.TrimPrefix(string(body), ")]}',")

	var parsed trendsResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse trends response: %w", err)
	}

	var topics []models.Topic
	for _, day := range parsed.Default.TrendingSearchesDays {
		for _, search := range day.TrendingSearches {
			description := ""
			link := ""
			if len(search.Articles) > 0 {
				description = search.Articles[0].Snippet
				link = search.Articles[0].URL
			}
			topics = append(topics, models.Topic{
				Title:       search.Title.Query,
				Description: description,
				Source:      p.Name(),
				Relevance:   rankScore(1.0, len(topics)),
				URL:         link,
				Metadata:    map[string]string{"traffic": search.FormattedTraffic},
			})
		}
	}

	return topics, nil
}

// Search filters the trending feed by keyword; the trends API exposes no
// keyword search of its own.
func (p *TrendsProvider) Search(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error) {
	trending, err := p.Trending(ctx, niche, "", "")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	var matched []models.Topic
	for _, t := range trending {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			matched = append(matched, t)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}
