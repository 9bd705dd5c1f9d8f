package prompt

import (
	"strings"
	"testing"

	"github.com/article-writer-api/internal/models"
)

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func TestBuild_Deterministic(t *testing.T) {
	p := Params{
		Topic:     "Edge Computing",
		Niche:     "technology",
		Tone:      "casual",
		WordCount: 800,
		Style: models.WritingStyle{
			Voice:    "conversational",
			Examples: boolPtr(true),
		},
	}

	first := Build(p)
	second := Build(p)

	if first != second {
		t.Error("Build should be deterministic for identical params")
	}
	if !strings.Contains(first, `Write a 800-word article about "Edge Computing" for the technology niche.`) {
		t.Errorf("Missing base instruction in prompt:\n%s", first)
	}
	if !strings.Contains(first, "Use a casual tone") {
		t.Errorf("Missing tone clause in prompt:\n%s", first)
	}
	if !strings.Contains(first, "- Voice: conversational") {
		t.Errorf("Missing voice line in prompt:\n%s", first)
	}
	if !strings.Contains(first, "- Include examples: true") {
		t.Errorf("Missing examples line in prompt:\n%s", first)
	}
	if !strings.Contains(first, "TITLE:") || !strings.Contains(first, "CONTENT:") {
		t.Errorf("Missing output format instruction in prompt:\n%s", first)
	}
}

func TestBuild_Defaults(t *testing.T) {
	got := Build(Params{Topic: "Anything", Niche: "health"})

	if !strings.Contains(got, "Write a 1000-word article") {
		t.Errorf("Expected default word count, got:\n%s", got)
	}
	if !strings.Contains(got, "Use a professional tone") {
		t.Errorf("Expected default tone, got:\n%s", got)
	}
}

func TestBuild_OmitsAbsentStyleFields(t *testing.T) {
	got := Build(Params{Topic: "T", Niche: "finance"})

	if strings.Contains(got, "Writing Style:") {
		t.Errorf("Empty style should produce no style block:\n%s", got)
	}
	if strings.Contains(got, "- Include quotes") {
		t.Errorf("Absent boolean fields should be omitted:\n%s", got)
	}
}

func TestBuild_CustomPrompt(t *testing.T) {
	got := Build(Params{Topic: "T", Niche: "travel", CustomPrompt: "mention the off season"})

	if !strings.Contains(got, "Additional instructions: mention the off season") {
		t.Errorf("Custom prompt should appear:\n%s", got)
	}
}

func TestMergeStyle_PartialOverride(t *testing.T) {
	base := models.WritingStyle{
		Voice:              "authoritative",
		Complexity:         "moderate",
		Structure:          "list-based",
		Quotes:             boolPtr(false),
		CustomInstructions: "keep paragraphs short",
	}

	merged := MergeStyle(base, &models.StyleOverride{
		Voice:  strPtr("conversational"),
		Quotes: boolPtr(true),
	})

	if merged.Voice != "conversational" {
		t.Errorf("Voice should be overridden, got %q", merged.Voice)
	}
	if merged.Quotes == nil || !*merged.Quotes {
		t.Error("Quotes should be overridden to true")
	}
	if merged.Complexity != "moderate" || merged.Structure != "list-based" {
		t.Error("Fields absent from override should keep stored values")
	}
	if merged.CustomInstructions != "keep paragraphs short" {
		t.Errorf("Custom instructions should be preserved, got %q", merged.CustomInstructions)
	}
}

func TestMergeStyle_NilOverride(t *testing.T) {
	base := models.WritingStyle{Voice: "authoritative"}
	if got := MergeStyle(base, nil); got != base {
		t.Error("Nil override should return the base unchanged")
	}
}
