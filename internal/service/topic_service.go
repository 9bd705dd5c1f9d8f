package service

import (
	"context"
	"strings"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/topics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// trendingCap is the fixed result cap for the trending query shape
const trendingCap = 20

// topicService aggregates topic suggestions across providers
type topicService struct {
	providers []topics.Provider
	log       zerolog.Logger
}

func newTopicService(providers []topics.Provider, log zerolog.Logger) *topicService {
	return &topicService{
		providers: providers,
		log:       log.With().Str("service", "topic").Logger(),
	}
}

// sourceResult carries one provider's outcome through the join. Errors
// are dropped only at the aggregation boundary, never earlier.
type sourceResult struct {
	source string
	items  []models.Topic
	err    error
}

// Trending fans out to every configured provider, merges in priority
// order, dedupes by title and caps the result. A fully empty merge is
// replaced by the curated fallback for the niche.
func (s *topicService) Trending(ctx context.Context, niche, country, timeframe string) []models.Topic {
	results := s.fanOut(ctx, func(ctx context.Context, p topics.Provider) ([]models.Topic, error) {
		return p.Trending(ctx, niche, country, timeframe)
	})

	merged := s.merge(results, trendingCap)
	if len(merged) == 0 {
		s.log.Warn().Str("niche", niche).Msg("All topic sources empty, using curated fallback")
		return topics.Fallback(niche)
	}
	return merged
}

// Search fans out a keyword query. Total failure yields an empty slice,
// never a fallback.
func (s *topicService) Search(ctx context.Context, keyword, niche string, limit int) []models.Topic {
	if limit <= 0 || limit > 50 {
		limit = trendingCap
	}
	results := s.fanOut(ctx, func(ctx context.Context, p topics.Provider) ([]models.Topic, error) {
		return p.Search(ctx, keyword, niche, limit)
	})
	return s.merge(results, limit)
}

// Niches returns the closed niche enum with display labels
func (s *topicService) Niches() []models.Niche {
	niches := make([]models.Niche, 0, len(models.NicheOrder))
	for _, id := range models.NicheOrder {
		niches = append(niches, models.Niche{ID: id, Label: strings.ToUpper(id[:1]) + id[1:]})
	}
	return niches
}

// fanOut queries all providers concurrently and collects one result per
// provider in priority order. The join is the only synchronization
// barrier; no provider error aborts the call.
func (s *topicService) fanOut(ctx context.Context, query func(context.Context, topics.Provider) ([]models.Topic, error)) []sourceResult {
	results := make([]sourceResult, len(s.providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range s.providers {
		g.Go(func() error {
			items, err := query(gctx, p)
			results[i] = sourceResult{source: p.Name(), items: items, err: err}
			return nil
		})
	}
	g.Wait()

	return results
}

// merge concatenates provider results in priority order, drops failed
// sources, dedupes by exact title keeping the first occurrence, and
// truncates to the cap.
func (s *topicService) merge(results []sourceResult, cap int) []models.Topic {
	seen := make(map[string]bool)
	var merged []models.Topic

	for _, r := range results {
		if r.err != nil {
			s.log.Warn().Err(r.err).Str("source", r.source).Msg("Topic source failed")
			continue
		}
		for _, item := range r.items {
			if item.Title == "" || seen[item.Title] {
				continue
			}
			seen[item.Title] = true
			merged = append(merged, item)
			if len(merged) >= cap {
				return merged
			}
		}
	}
	return merged
}
