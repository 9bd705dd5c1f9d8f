package topics

import (
	"testing"

	"github.com/article-writer-api/internal/config"
	"github.com/rs/zerolog"
)

func TestNewProviders_KeylessSourcesAreSkipped(t *testing.T) {
	providers := NewProviders(config.ProviderConfig{}, zerolog.Nop())

	// Trends and Reddit need no credentials and are always present
	if len(providers) != 2 {
		t.Fatalf("Expected 2 keyless providers, got %d", len(providers))
	}
	if providers[0].Name() != "google-trends" {
		t.Errorf("Trends should come first, got %q", providers[0].Name())
	}

	all := NewProviders(config.ProviderConfig{
		NewsAPIKey:    "key",
		TwitterBearer: "bearer",
	}, zerolog.Nop())
	if len(all) != 4 {
		t.Fatalf("Expected 4 providers with all keys set, got %d", len(all))
	}
	order := []string{"google-trends", "newsapi", "reddit", "twitter"}
	for i, want := range order {
		if all[i].Name() != want {
			t.Errorf("Provider %d should be %q, got %q", i, want, all[i].Name())
		}
	}
}

func TestRankScore(t *testing.T) {
	if got := rankScore(1.0, 0); got != 1.0 {
		t.Errorf("First result should keep the base weight, got %f", got)
	}
	if got := rankScore(1.0, 5); got != 0.9 {
		t.Errorf("Expected 0.9 for rank 5, got %f", got)
	}
	if got := rankScore(0.7, 100); got != 0.1 {
		t.Errorf("Score should floor at 0.1, got %f", got)
	}
}

func TestFallback(t *testing.T) {
	got := Fallback("technology")
	if len(got) == 0 {
		t.Fatal("Known niche should have curated topics")
	}
	for _, topic := range got {
		if topic.Source != "curated" {
			t.Errorf("Curated topic should carry the curated source, got %q", topic.Source)
		}
		if topic.Title == "" {
			t.Error("Curated topic should have a title")
		}
	}

	unknown := Fallback("numismatics")
	if len(unknown) == 0 {
		t.Fatal("Unknown niche should still get the generic fallback")
	}
}

func TestFallback_ReturnsCopies(t *testing.T) {
	first := Fallback("health")
	first[0].Title = "mutated"

	second := Fallback("health")
	if second[0].Title == "mutated" {
		t.Error("Fallback must not expose shared state")
	}
}
