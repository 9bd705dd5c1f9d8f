// Package prompt builds deterministic generation prompts from user preferences.
package prompt

import (
	"fmt"
	"strings"

	"github.com/article-writer-api/internal/models"
)

const (
	// DefaultTone is applied when a request carries no tone
	DefaultTone = "professional"
	// DefaultWordCount is applied when a request carries no word count
	DefaultWordCount = 1000
)

// Params are the inputs to Build. Topic and Niche are required by callers;
// Build itself performs no validation and no I/O.
type Params struct {
	Topic        string
	Niche        string
	Style        models.WritingStyle
	Tone         string
	WordCount    int
	CustomPrompt string
}

// MergeStyle applies a partial request-level override on top of a stored
// style, field by field. Fields absent from the override keep the stored
// value; nothing is ever wholesale replaced.
func MergeStyle(base models.WritingStyle, o *models.StyleOverride) models.WritingStyle {
	if o == nil {
		return base
	}
	merged := base
	if o.Voice != nil {
		merged.Voice = *o.Voice
	}
	if o.Complexity != nil {
		merged.Complexity = *o.Complexity
	}
	if o.Structure != nil {
		merged.Structure = *o.Structure
	}
	if o.Examples != nil {
		merged.Examples = o.Examples
	}
	if o.Quotes != nil {
		merged.Quotes = o.Quotes
	}
	if o.CallToAction != nil {
		merged.CallToAction = o.CallToAction
	}
	if o.CustomInstructions != nil {
		merged.CustomInstructions = *o.CustomInstructions
	}
	return merged
}

// Build assembles the generation prompt. Section order is fixed: base
// instruction, tone clause, writing style block, custom instructions,
// output format instruction.
func Build(p Params) string {
	tone := p.Tone
	if tone == "" {
		tone = DefaultTone
	}
	wordCount := p.WordCount
	if wordCount <= 0 {
		wordCount = DefaultWordCount
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Write a %d-word article about \"%s\" for the %s niche.\n", wordCount, p.Topic, p.Niche))
	b.WriteString(fmt.Sprintf("Use a %s tone throughout.\n", tone))

	writeStyleBlock(&b, p.Style)

	if p.CustomPrompt != "" {
		b.WriteString(fmt.Sprintf("\nAdditional instructions: %s\n", p.CustomPrompt))
	}

	b.WriteString("\nFormat the output exactly as follows:\n")
	b.WriteString("TITLE: <the article title>\n")
	b.WriteString("CONTENT:\n<the full article body>\n")

	return b.String()
}

// writeStyleBlock emits one line per present style field, in fixed order.
// Absent fields are omitted entirely.
func writeStyleBlock(b *strings.Builder, s models.WritingStyle) {
	var lines []string
	if s.Voice != "" {
		lines = append(lines, fmt.Sprintf("- Voice: %s", s.Voice))
	}
	if s.Complexity != "" {
		lines = append(lines, fmt.Sprintf("- Complexity: %s", s.Complexity))
	}
	if s.Structure != "" {
		lines = append(lines, fmt.Sprintf("- Structure: %s", s.Structure))
	}
	if s.Examples != nil {
		lines = append(lines, fmt.Sprintf("- Include examples: %t", *s.Examples))
	}
	if s.Quotes != nil {
		lines = append(lines, fmt.Sprintf("- Include quotes: %t", *s.Quotes))
	}
	if s.CallToAction != nil {
		lines = append(lines, fmt.Sprintf("- Include a call to action: %t", *s.CallToAction))
	}
	if len(lines) == 0 && s.CustomInstructions == "" {
		return
	}

	b.WriteString("\nWriting Style:\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if s.CustomInstructions != "" {
		b.WriteString(fmt.Sprintf("- Custom instructions: %s\n", s.CustomInstructions))
	}
}
