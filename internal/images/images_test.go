package images

import (
	"strings"
	"testing"

	"github.com/article-writer-api/internal/config"
	"github.com/rs/zerolog"
)

func TestNewProviders_KeylessSourcesAreSkipped(t *testing.T) {
	if got := NewProviders(config.ProviderConfig{}, zerolog.Nop()); len(got) != 0 {
		t.Errorf("No keys should mean no providers, got %d", len(got))
	}

	all := NewProviders(config.ProviderConfig{
		UnsplashKey: "uk",
		PexelsKey:   "pk",
	}, zerolog.Nop())
	if len(all) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(all))
	}
	if all[0].Name() != "unsplash" || all[1].Name() != "pexels" {
		t.Errorf("Unexpected provider order: %q, %q", all[0].Name(), all[1].Name())
	}
}

func TestNicheKeywords(t *testing.T) {
	known := NicheKeywords("travel")
	if len(known) == 0 {
		t.Fatal("Known niche should have keywords")
	}

	unknown := NicheKeywords("numismatics")
	if len(unknown) == 0 {
		t.Fatal("Unknown niche should still yield a usable query")
	}
}

func TestFallback(t *testing.T) {
	got := Fallback("mountain sunrise")

	if len(got) != 2 {
		t.Fatalf("Expected exactly 2 placeholder records, got %d", len(got))
	}
	for _, img := range got {
		if img.Source != "placeholder" {
			t.Errorf("Expected placeholder source, got %q", img.Source)
		}
		if !strings.Contains(img.URL, "mountain+sunrise") {
			t.Errorf("Placeholder URL should reference the query, got %q", img.URL)
		}
	}
}
