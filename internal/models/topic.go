package models

import (
	"time"
)

// Topic is a single suggestion returned by a topic source
type Topic struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Source      string            `json:"source"`
	Relevance   float64           `json:"relevance"`
	URL         string            `json:"url,omitempty"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Niche is a content category entry for the niches endpoint
type Niche struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
