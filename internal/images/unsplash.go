package images

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

const unsplashBaseURL = "https://api.unsplash.com"

// UnsplashProvider queries the Unsplash photo search API
type UnsplashProvider struct {
	accessKey string
	client    *http.Client
}

// NewUnsplashProvider creates an Unsplash stock-photo provider
func NewUnsplashProvider(accessKey string, timeout time.Duration) *UnsplashProvider {
	return &UnsplashProvider{
		accessKey: accessKey,
		client:    &http.Client{Timeout: timeout},
	}
}

// Name returns the name of this provider
func (p *UnsplashProvider) Name() string {
	return "unsplash"
}

type unsplashSearchResponse struct {
	Results []struct {
		ID             string `json:"id"`
		AltDescription string `json:"alt_description"`
		Color          string `json:"color"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		URLs           struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		Links struct {
			DownloadLocation string `json:"download_location"`
		} `json:"links"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Search queries Unsplash photo search
func (p *UnsplashProvider) Search(ctx context.Context, q models.ImageQuery) ([]models.Image, error) {
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("page", strconv.Itoa(max(q.Page, 1)))
	params.Set("per_page", strconv.Itoa(clampPerPage(q.PerPage)))
	if q.Orientation != "" {
		params.Set("orientation", q.Orientation)
	}
	if q.Color != "" {
		params.Set("color", q.Color)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, unsplashBaseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute unsplash request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash request failed with status: %d", resp.StatusCode)
	}

	var parsed unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse unsplash response: %w", err)
	}

	images := make([]models.Image, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		images = append(images, models.Image{
			ID:              r.ID,
			URL:             r.URLs.Regular,
			ThumbURL:        r.URLs.Thumb,
			Alt:             r.AltDescription,
			Source:          p.Name(),
			Photographer:    r.User.Name,
			PhotographerURL: r.User.Links.HTML,
			Width:           r.Width,
			Height:          r.Height,
			Color:           r.Color,
			DownloadURL:     r.Links.DownloadLocation,
		})
	}

	return images, nil
}

// TrackDownload pings the photo's download endpoint as Unsplash's API
// terms require. Failures are the caller's to ignore.
func (p *UnsplashProvider) TrackDownload(ctx context.Context, downloadLocation string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadLocation, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to track download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download tracking failed with status: %d", resp.StatusCode)
	}
	return nil
}

func clampPerPage(perPage int) int {
	if perPage <= 0 {
		return 10
	}
	if perPage > 30 {
		return 30
	}
	return perPage
}
