package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/article-writer-api/internal/images"
	"github.com/article-writer-api/internal/mocks"
	"github.com/article-writer-api/internal/models"
	"github.com/rs/zerolog"
)

func imageList(source string, urls ...string) []models.Image {
	out := make([]models.Image, 0, len(urls))
	for _, u := range urls {
		out = append(out, models.Image{ID: u, URL: u, Source: source})
	}
	return out
}

func TestImageService_Search_MergesAndDedupes(t *testing.T) {
	svc := newImageService([]images.Provider{
		&mocks.MockImageProvider{SourceName: "unsplash", Images: imageList("unsplash", "https://img/a", "https://img/b")},
		&mocks.MockImageProvider{SourceName: "pexels", Images: imageList("pexels", "https://img/b", "https://img/c")},
	}, zerolog.Nop())

	got := svc.Search(context.Background(), models.ImageQuery{Query: "mountains"})

	if len(got) != 3 {
		t.Fatalf("Expected 3 deduped images, got %d", len(got))
	}
	if got[1].Source != "unsplash" {
		t.Errorf("Duplicate URL should keep the first source, got %q", got[1].Source)
	}
}

func TestImageService_Search_PlaceholdersOnTotalFailure(t *testing.T) {
	svc := newImageService([]images.Provider{
		&mocks.MockImageProvider{SourceName: "unsplash", Err: errors.New("rate limited")},
		&mocks.MockImageProvider{SourceName: "pexels", Err: errors.New("down")},
	}, zerolog.Nop())

	got := svc.Search(context.Background(), models.ImageQuery{Query: "sunset"})

	if len(got) != 2 {
		t.Fatalf("Expected 2 placeholder images, got %d", len(got))
	}
	for _, img := range got {
		if img.Source != "placeholder" {
			t.Errorf("Fallback image should carry the placeholder source, got %q", img.Source)
		}
	}
}

func TestImageService_Trending_CapsToLimit(t *testing.T) {
	urls := make([]string, 40)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://img/%d", i)
	}
	svc := newImageService([]images.Provider{
		&mocks.MockImageProvider{SourceName: "unsplash", Images: imageList("unsplash", urls...)},
	}, zerolog.Nop())

	got := svc.Trending(context.Background(), "technology", 8)

	if len(got) != 8 {
		t.Errorf("Expected 8 images, got %d", len(got))
	}
}

func TestImageService_Random_CapsToCount(t *testing.T) {
	urls := make([]string, 20)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://img/%d", i)
	}
	svc := newImageService([]images.Provider{
		&mocks.MockImageProvider{SourceName: "pexels", Images: imageList("pexels", urls...)},
	}, zerolog.Nop())

	got := svc.Random(context.Background(), "abstract", 4)

	if len(got) != 4 {
		t.Errorf("Expected 4 images, got %d", len(got))
	}
}

func TestImageService_TrackDownload(t *testing.T) {
	svc := newImageService(nil, zerolog.Nop())

	url, err := svc.TrackDownload(context.Background(), &models.DownloadImageRequest{
		URL:    "https://img/a",
		Source: "pexels",
	})
	if err != nil {
		t.Fatalf("TrackDownload failed: %v", err)
	}
	if url != "https://img/a" {
		t.Errorf("Expected original URL back, got %q", url)
	}

	if _, err := svc.TrackDownload(context.Background(), &models.DownloadImageRequest{}); err == nil {
		t.Error("Missing URL should be rejected")
	}
}
