package service

import (
	"context"
	"math/rand"

	"github.com/article-writer-api/internal/apperr"
	"github.com/article-writer-api/internal/images"
	"github.com/article-writer-api/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// imageService aggregates stock photos across providers
type imageService struct {
	providers []images.Provider
	log       zerolog.Logger
}

func newImageService(providers []images.Provider, log zerolog.Logger) *imageService {
	return &imageService{
		providers: providers,
		log:       log.With().Str("service", "image").Logger(),
	}
}

type imageResult struct {
	source string
	items  []models.Image
	err    error
}

// Search fans one query out to every configured provider, merges in
// priority order and dedupes by image URL. Total failure yields two
// static placeholder records referencing the query.
func (s *imageService) Search(ctx context.Context, q models.ImageQuery) []models.Image {
	merged := s.aggregate(ctx, []models.ImageQuery{q}, 0)
	if len(merged) == 0 {
		s.log.Warn().Str("query", q.Query).Msg("All image sources empty, using placeholders")
		return images.Fallback(q.Query)
	}
	return merged
}

// Trending fans out over the niche's fixed keyword queries and caps the
// merged result to the requested limit.
func (s *imageService) Trending(ctx context.Context, niche string, limit int) []models.Image {
	if limit <= 0 || limit > 50 {
		limit = 12
	}

	keywords := images.NicheKeywords(niche)
	queries := make([]models.ImageQuery, 0, len(keywords))
	perKeyword := limit/len(keywords) + 1
	for _, kw := range keywords {
		queries = append(queries, models.ImageQuery{Query: kw, PerPage: perKeyword})
	}

	merged := s.aggregate(ctx, queries, limit)
	if len(merged) == 0 {
		s.log.Warn().Str("niche", niche).Msg("All image sources empty, using placeholders")
		return images.Fallback(niche)
	}
	return merged
}

// Random searches the query then shuffles before capping to count. The
// shuffle is cosmetic, not cryptographic.
func (s *imageService) Random(ctx context.Context, query string, count int) []models.Image {
	if count <= 0 || count > 30 {
		count = 5
	}

	merged := s.aggregate(ctx, []models.ImageQuery{{Query: query, PerPage: 30}}, 0)
	if len(merged) == 0 {
		s.log.Warn().Str("query", query).Msg("All image sources empty, using placeholders")
		return images.Fallback(query)
	}

	rand.Shuffle(len(merged), func(i, j int) {
		merged[i], merged[j] = merged[j], merged[i]
	})
	if len(merged) > count {
		merged = merged[:count]
	}
	return merged
}

// TrackDownload acknowledges a download and returns a direct URL. For
// Unsplash the provider's download endpoint is pinged best-effort as its
// API terms require.
func (s *imageService) TrackDownload(ctx context.Context, req *models.DownloadImageRequest) (string, error) {
	if req.URL == "" {
		return "", apperr.Validation("url is required")
	}

	if req.Source == "unsplash" && req.DownloadURL != "" {
		for _, p := range s.providers {
			u, ok := p.(*images.UnsplashProvider)
			if !ok {
				continue
			}
			if err := u.TrackDownload(ctx, req.DownloadURL); err != nil {
				s.log.Warn().Err(err).Msg("Unsplash download tracking failed")
			}
			break
		}
	}

	return req.URL, nil
}

// aggregate fans every (provider, query) pair out concurrently, then
// merges per provider priority, deduping by URL. A zero cap means no cap.
func (s *imageService) aggregate(ctx context.Context, queries []models.ImageQuery, cap int) []models.Image {
	results := make([]imageResult, len(s.providers)*len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range s.providers {
		for j, q := range queries {
			idx := i*len(queries) + j
			g.Go(func() error {
				items, err := p.Search(gctx, q)
				results[idx] = imageResult{source: p.Name(), items: items, err: err}
				return nil
			})
		}
	}
	g.Wait()

	seen := make(map[string]bool)
	var merged []models.Image
	for _, r := range results {
		if r.err != nil {
			s.log.Warn().Err(r.err).Str("source", r.source).Msg("Image source failed")
			continue
		}
		for _, img := range r.items {
			if img.URL == "" || seen[img.URL] {
				continue
			}
			seen[img.URL] = true
			merged = append(merged, img)
			if cap > 0 && len(merged) >= cap {
				return merged
			}
		}
	}
	return merged
}
