// Package topics provides topic suggestion providers backed by external
// trend, news and community APIs.
package topics

import (
	"context"
	"time"

	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/models"
	"github.com/rs/zerolog"
)

// Provider is a single external topic source. Implementations return
// their own results only; merging, deduplication and fallback happen at
// the aggregation layer.
type Provider interface {
	// Name returns the source identifier attached to each result
	Name() string

	// Trending returns currently trending topics for a niche
	Trending(ctx context.Context, niche, country, timeframe string) ([]models.Topic, error)

	// Search returns topics matching a keyword
	Search(ctx context.Context, keyword, niche string, limit int) ([]models.Topic, error)
}

// NewProviders assembles the configured providers in priority order.
// Sources whose API key is absent are simply left out of the fan-out.
func NewProviders(cfg config.ProviderConfig, log zerolog.Logger) []Provider {
	httpTimeout := cfg.ProviderTimeout
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}

	providers := []Provider{NewTrendsProvider(httpTimeout)}

	if cfg.NewsAPIKey != "" {
		providers = append(providers, NewNewsProvider(cfg.NewsAPIKey, httpTimeout))
	} else {
		log.Info().Msg("NEWS_API_KEY not set, news topic source disabled")
	}

	providers = append(providers, NewRedditProvider(httpTimeout))

	if cfg.TwitterBearer != "" {
		providers = append(providers, NewSocialProvider(cfg.TwitterBearer, httpTimeout))
	} else {
		log.Info().Msg("TWITTER_BEARER_TOKEN not set, social topic source disabled")
	}

	return providers
}

// rankScore assigns a deterministic relevance score from a provider's
// base weight and a result's position in that provider's output.
func rankScore(base float64, rank int) float64 {
	score := base - float64(rank)*0.02
	if score < 0.1 {
		return 0.1
	}
	return score
}
