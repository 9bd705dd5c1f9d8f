package benchmark

import (
	"strings"
	"testing"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/parser"
	"github.com/article-writer-api/internal/prompt"
)

func sampleOutput(paragraphs int) string {
	var b strings.Builder
	b.WriteString("TITLE: A Benchmark Article\nCONTENT:\n")
	for i := 0; i < paragraphs; i++ {
		b.WriteString("This paragraph repeats a handful of plain words to resemble generated prose.\n\n")
	}
	return b.String()
}

// BenchmarkBuildPrompt benchmarks prompt assembly with a full style block
func BenchmarkBuildPrompt(b *testing.B) {
	yes := true
	params := prompt.Params{
		Topic:     "The Economics of Remote Work",
		Niche:     "business",
		Tone:      "professional",
		WordCount: 1500,
		Style: models.WritingStyle{
			Voice:              "authoritative",
			Complexity:         "moderate",
			Structure:          "traditional",
			Examples:           &yes,
			Quotes:             &yes,
			CustomInstructions: "cite at least two studies",
		},
		CustomPrompt: "close with an actionable checklist",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prompt.Build(params)
	}
}

// BenchmarkParse benchmarks parsing a mid-sized generated article
func BenchmarkParse(b *testing.B) {
	raw := sampleOutput(40)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parser.Parse(raw)
	}
}

// BenchmarkCountWords benchmarks the canonical word counter on a large body
func BenchmarkCountWords(b *testing.B) {
	body := strings.Repeat("several plain words in a row ", 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parser.CountWords(body)
	}
}
