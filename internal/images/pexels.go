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

const pexelsBaseURL = "https://api.pexels.com/v1"

// PexelsProvider queries the Pexels photo search API
type PexelsProvider struct {
	apiKey string
	client *http.Client
}

// NewPexelsProvider creates a Pexels stock-photo provider
func NewPexelsProvider(apiKey string, timeout time.Duration) *PexelsProvider {
	return &PexelsProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the name of this provider
func (p *PexelsProvider) Name() string {
	return "pexels"
}

type pexelsSearchResponse struct {
	Photos []struct {
		ID              int    `json:"id"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		URL             string `json:"url"`
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
		AvgColor        string `json:"avg_color"`
		Alt             string `json:"alt"`
		Src             struct {
			Large string `json:"large"`
			Tiny  string `json:"tiny"`
		} `json:"src"`
	} `json:"photos"`
}

// Search queries Pexels photo search
func (p *PexelsProvider) Search(ctx context.Context, q models.ImageQuery) ([]models.Image, error) {
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

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pexelsBaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pexels request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute pexels request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels request failed with status: %d", resp.StatusCode)
	}

	var parsed pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse pexels response: %w", err)
	}

	images := make([]models.Image, 0, len(parsed.Photos))
	for _, photo := range parsed.Photos {
		images = append(images, models.Image{
			ID:              strconv.Itoa(photo.ID),
			URL:             photo.Src.Large,
			ThumbURL:        photo.Src.Tiny,
			Alt:             photo.Alt,
			Source:          p.Name(),
			Photographer:    photo.Photographer,
			PhotographerURL: photo.PhotographerURL,
			Width:           photo.Width,
			Height:          photo.Height,
			Color:           photo.AvgColor,
			DownloadURL:     photo.Src.Large,
		})
	}

	return images, nil
}
