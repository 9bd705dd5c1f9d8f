package models

import (
	"time"
)

// User represents a registered account with its generation preferences
type User struct {
	ID           string       `json:"id" db:"id"`
	Email        string       `json:"email" db:"email"`
	Username     string       `json:"username" db:"username"`
	PasswordHash string       `json:"-" db:"password_hash"`
	Active       bool         `json:"active" db:"active"`
	WritingStyle WritingStyle `json:"writing_style" db:"-"`
	BlogSettings BlogSettings `json:"blog_settings" db:"-"`
	Preferences  Preferences  `json:"preferences" db:"-"`
	Stats        Stats        `json:"stats" db:"-"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// WritingStyle controls prompt phrasing. String fields left empty and nil
// booleans count as unset and are omitted from the prompt.
type WritingStyle struct {
	Voice              string `json:"voice,omitempty"`
	Complexity         string `json:"complexity,omitempty"`
	Structure          string `json:"structure,omitempty"`
	Examples           *bool  `json:"examples,omitempty"`
	Quotes             *bool  `json:"quotes,omitempty"`
	CallToAction       *bool  `json:"call_to_action,omitempty"`
	CustomInstructions string `json:"custom_instructions,omitempty"`
}

// StyleOverride is a request-level partial style. Non-nil fields override
// the stored style key-by-key.
type StyleOverride struct {
	Voice              *string `json:"voice,omitempty"`
	Complexity         *string `json:"complexity,omitempty"`
	Structure          *string `json:"structure,omitempty"`
	Examples           *bool   `json:"examples,omitempty"`
	Quotes             *bool   `json:"quotes,omitempty"`
	CallToAction       *bool   `json:"call_to_action,omitempty"`
	CustomInstructions *string `json:"custom_instructions,omitempty"`
}

// BlogSettings holds remote blog credentials and connection state
type BlogSettings struct {
	URL                string     `json:"url,omitempty"`
	Username           string     `json:"username,omitempty"`
	AppPassword        string     `json:"app_password,omitempty"`
	Connected          bool       `json:"connected"`
	DefaultStatus      string     `json:"default_status,omitempty"`
	DefaultImageSource string     `json:"default_image_source,omitempty"`
	ConnectedAt        *time.Time `json:"connected_at,omitempty"`
}

// Preferences holds per-user generation defaults
type Preferences struct {
	DefaultNiche     string `json:"default_niche,omitempty"`
	DefaultWordCount int    `json:"default_word_count,omitempty"`
	DefaultTone      string `json:"default_tone,omitempty"`
}

// Stats tracks counters updated by the generation path
type Stats struct {
	ArticlesGenerated int        `json:"articles_generated"`
	WordsGenerated    int        `json:"words_generated"`
	ArticlesPublished int        `json:"articles_published"`
	LastGeneratedAt   *time.Time `json:"last_generated_at,omitempty"`
}

// ValidVoices defines allowed writing style voices
var ValidVoices = map[string]bool{
	"professional":   true,
	"casual":         true,
	"friendly":       true,
	"authoritative":  true,
	"conversational": true,
}

// ValidComplexities defines allowed writing style complexities
var ValidComplexities = map[string]bool{
	"simple":   true,
	"moderate": true,
	"advanced": true,
}

// ValidStructures defines allowed writing style structures
var ValidStructures = map[string]bool{
	"traditional":     true,
	"storytelling":    true,
	"list-based":      true,
	"question-answer": true,
}

// Sanitized returns a copy safe to return to API clients. The password
// hash is already excluded by tags; blog credentials are stripped here.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.BlogSettings.AppPassword = ""
	return u
}

// MinWordCount and MaxWordCount bound the default/requested word count
const (
	MinWordCount = 300
	MaxWordCount = 3000
)
