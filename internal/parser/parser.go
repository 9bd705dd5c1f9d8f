// Package parser turns raw generated text into a title/body pair.
package parser

import (
	"regexp"
	"strings"
)

const (
	titleMarker   = "TITLE:"
	contentMarker = "CONTENT:"

	// DefaultTitle is used when no title can be recovered from the text
	DefaultTitle = "Generated Article"
)

// Parsed is the structured result of parsing generated output
type Parsed struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Parse extracts a title and body from raw generated text.
//
// Primary strategy: lines beginning with "TITLE:" set the title, and once
// a "CONTENT:" line is seen every subsequent line is appended verbatim.
// When neither marker appears anywhere, the text is split on the first
// blank line: first segment is the title, remainder the content.
func Parse(raw string) Parsed {
	lines := strings.Split(raw, "\n")

	var title string
	var content []string
	inContent := false
	sawMarker := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, titleMarker):
			title = strings.TrimSpace(strings.TrimPrefix(trimmed, titleMarker))
			sawMarker = true
		case strings.HasPrefix(trimmed, contentMarker):
			inContent = true
			sawMarker = true
			// Text on the marker line itself belongs to the body
			if rest := strings.TrimSpace(strings.TrimPrefix(trimmed, contentMarker)); rest != "" {
				content = append(content, rest)
			}
		case inContent:
			content = append(content, line)
		}
	}

	if !sawMarker {
		return fallbackParse(raw)
	}

	body := trimBlankEdges(strings.Join(content, "\n"))
	if title == "" {
		title = DefaultTitle
	}
	return Parsed{Title: title, Content: body, WordCount: CountWords(body)}
}

// fallbackParse splits on the first blank-line boundary
func fallbackParse(raw string) Parsed {
	parts := strings.SplitN(raw, "\n\n", 2)
	if len(parts) == 2 {
		title := strings.TrimSpace(parts[0])
		body := trimBlankEdges(parts[1])
		return Parsed{Title: title, Content: body, WordCount: CountWords(body)}
	}

	body := trimBlankEdges(raw)
	return Parsed{Title: DefaultTitle, Content: body, WordCount: CountWords(body)}
}

// CountWords is the canonical word counter used everywhere a word count is
// computed or recomputed. It splits on whitespace runs and counts the
// resulting tokens; note the empty string yields one empty token.
func CountWords(s string) int {
	return len(whitespaceRun.Split(s, -1))
}

// trimBlankEdges removes leading/trailing blank lines, preserving interior
// blank lines and line-internal whitespace.
func trimBlankEdges(s string) string {
	return strings.Trim(s, "\n\r\t ")
}
