// Package images provides stock-photo providers.
package images

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/models"
	"github.com/rs/zerolog"
)

// Provider is a single stock-photo source
type Provider interface {
	// Name returns the source identifier attached to each result
	Name() string

	// Search returns photos matching the query
	Search(ctx context.Context, q models.ImageQuery) ([]models.Image, error)
}

// NewProviders assembles the configured providers in priority order.
// Sources whose API key is absent are simply left out of the fan-out.
func NewProviders(cfg config.ProviderConfig, log zerolog.Logger) []Provider {
	httpTimeout := cfg.ProviderTimeout
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}

	var providers []Provider
	if cfg.UnsplashKey != "" {
		providers = append(providers, NewUnsplashProvider(cfg.UnsplashKey, httpTimeout))
	} else {
		log.Info().Msg("UNSPLASH_ACCESS_KEY not set, unsplash image source disabled")
	}
	if cfg.PexelsKey != "" {
		providers = append(providers, NewPexelsProvider(cfg.PexelsKey, httpTimeout))
	} else {
		log.Info().Msg("PEXELS_API_KEY not set, pexels image source disabled")
	}

	return providers
}

// NicheKeywords returns the fixed keyword queries fanned out for a
// niche's trending images.
func NicheKeywords(niche string) []string {
	if kws, ok := nicheImageKeywords[niche]; ok {
		return kws
	}
	return []string{niche}
}

var nicheImageKeywords = map[string][]string{
	"technology":    {"technology", "computer", "innovation"},
	"health":        {"health", "fitness", "wellness"},
	"business":      {"business", "office", "meeting"},
	"lifestyle":     {"lifestyle", "home", "relaxation"},
	"entertainment": {"concert", "cinema", "entertainment"},
	"sports":        {"sports", "stadium", "athlete"},
	"education":     {"education", "books", "classroom"},
	"travel":        {"travel", "landscape", "adventure"},
	"food":          {"food", "cooking", "restaurant"},
	"fashion":       {"fashion", "style", "clothing"},
	"science":       {"science", "laboratory", "space"},
	"politics":      {"government", "capitol", "debate"},
}

// Fallback returns two static placeholder records referencing the query,
// substituted when every provider fails or returns nothing.
func Fallback(query string) []models.Image {
	escaped := url.QueryEscape(query)
	return []models.Image{
		{
			ID:     "placeholder-1",
			URL:    fmt.Sprintf("https://placehold.co/1600x900?text=%s", escaped),
			Alt:    fmt.Sprintf("Placeholder image for %s", query),
			Source: "placeholder",
		},
		{
			ID:     "placeholder-2",
			URL:    fmt.Sprintf("https://placehold.co/1200x800?text=%s", escaped),
			Alt:    fmt.Sprintf("Placeholder image for %s", query),
			Source: "placeholder",
		},
	}
}
