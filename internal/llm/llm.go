// Package llm wraps the Gemini API for article generation.
package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the default Gemini model used for article generation
	DefaultModel = "gemini-2.0-flash"

	// maxOutputTokens caps the token budget regardless of word count
	maxOutputTokens = 4000
)

// Fixed decoding parameters. Generation is single-attempt: a provider
// error, timeout or empty response surfaces to the caller unretried.
const (
	temperature      float32 = 0.7
	topP             float32 = 0.9
	frequencyPenalty float32 = 0.1
	presencePenalty  float32 = 0.1
)

// Generator produces raw text for a prompt with a target word count
type Generator interface {
	Generate(ctx context.Context, prompt string, wordCount int) (string, error)
}

// Client is a Gemini-backed Generator
type Client struct {
	modelName string
	timeout   time.Duration
	gClient   *genai.Client
}

// NewClient creates a new generation client
func NewClient(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		modelName: modelName,
		timeout:   timeout,
		gClient:   gClient,
	}, nil
}

// Generate invokes the model once and returns the raw response text.
// The token budget is derived from the target word count: min(wordCount*2, 4000).
func (c *Client) Generate(ctx context.Context, prompt string, wordCount int) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		TopP:             genai.Ptr(topP),
		FrequencyPenalty: genai.Ptr(frequencyPenalty),
		PresencePenalty:  genai.Ptr(presencePenalty),
		MaxOutputTokens:  tokenBudget(wordCount),
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

func tokenBudget(wordCount int) int32 {
	budget := int32(wordCount * 2)
	if budget <= 0 || budget > maxOutputTokens {
		return maxOutputTokens
	}
	return budget
}
