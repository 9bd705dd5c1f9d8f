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

const redditBaseURL = "https://www.reddit.com"

// redditUserAgent identifies the service; reddit rejects default Go agents
const redditUserAgent = "article-writer-api/1.0"

// RedditProvider reads public subreddit listings as a community
// discussion signal. No API key is required.
type RedditProvider struct {
	client *http.Client
}

// NewRedditProvider creates a community-discussion topic provider
func NewRedditProvider(timeout time.Duration) *RedditProvider {
	return &RedditProvider{
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the name of this provider
func (p *RedditProvider) Name() string {
	return "reddit"
}

// nicheSubreddits maps each niche to a representative subreddit
var nicheSubreddits = map[string]string{
	"technology":    "technology",
	"health":        "health",
	"business":      "business",
	"lifestyle":     "lifehacks",
	"entertainment": "entertainment",
	"sports":        "sports",
	"education":     "education",
	"travel":        "travel",
	"food":          "food",
	"fashion":       "fashion",
	"science":       "science",
	"politics":      "politics",
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				SelfText   string  `json:"selftext"`
				Permalink  string  `json:"permalink"`
				CreatedUTC float64 `json:"created_utc"`
				Score      int     `json:"score"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Trending fetches hot posts from the niche's subreddit
func (p *RedditProvider) Trending(ctx context.Context, niche, country, timeframe string) ([]models.Topic, error) {
	subreddit, ok := nicheSubreddits[niche]
	if !ok {
		subreddit = "popular"
	}
	endpoint := fmt.Sprintf("%s/r/%s/hot.json?limit=20", redditBaseURL, subreddit)
	return p.fetch(ctx, endpoint)
}

// Search queries reddit's sitewide search by keyword
func (p *RedditProvider) Search(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("sort", "relevance")
	params.Set("limit", strconv.Itoa(limit))
	if subreddit, ok := nicheSubreddits[niche]; ok {
		params.Set("restrict_sr", "false")
		params.Set("q", keyword+" subreddit:"+subreddit)
	}
	return p.fetch(ctx, redditBaseURL+"/search.json?"+params.Encode())
}

func (p *RedditProvider) fetch(ctx context.Context, fullURL string) ([]models.Topic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reddit request: %w", err)
	}
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute reddit request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit request failed with status: %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to parse reddit response: %w", err)
	}

	var topics []models.Topic
	for i, child := range listing.Data.Children {
		post := child.Data
		if post.Title == "" {
			continue
		}
		created := time.Unix(int64(post.CreatedUTC), 0).UTC()
		topics = append(topics, models.Topic{
			Title:       post.Title,
			Description: truncate(post.SelfText, 280),
			Source:      p.Name(),
			Relevance:   rankScore(0.8, i),
			URL:         redditBaseURL + post.Permalink,
			PublishedAt: &created,
			Metadata:    map[string]string{"score": strconv.Itoa(post.Score)},
		})
	}

	return topics, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
