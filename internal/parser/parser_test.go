package parser

import "testing"

func TestParse_Markers(t *testing.T) {
	raw := "TITLE: The Future of AI\nCONTENT:\nArtificial intelligence is changing everything.\n\nIt is moving fast."

	got := Parse(raw)

	if got.Title != "The Future of AI" {
		t.Errorf("Expected title 'The Future of AI', got %q", got.Title)
	}
	if got.Content != "Artificial intelligence is changing everything.\n\nIt is moving fast." {
		t.Errorf("Unexpected content: %q", got.Content)
	}
}

func TestParse_ContentOnMarkerLine(t *testing.T) {
	raw := "TITLE: Short\nCONTENT: Body starts here.\nAnd continues."

	got := Parse(raw)

	if got.Content != "Body starts here.\nAnd continues." {
		t.Errorf("Text after the CONTENT marker should be kept, got %q", got.Content)
	}
}

func TestParse_FallbackBlankLine(t *testing.T) {
	raw := "A Headline Without Markers\n\nThe body paragraph follows the first blank line."

	got := Parse(raw)

	if got.Title != "A Headline Without Markers" {
		t.Errorf("Expected first segment as title, got %q", got.Title)
	}
	if got.Content != "The body paragraph follows the first blank line." {
		t.Errorf("Unexpected content: %q", got.Content)
	}
}

func TestParse_SingleLineGetsDefaultTitle(t *testing.T) {
	got := Parse("Just one line of text with no separator anywhere")

	if got.Title != DefaultTitle {
		t.Errorf("Expected default title %q, got %q", DefaultTitle, got.Title)
	}
	if got.Content != "Just one line of text with no separator anywhere" {
		t.Errorf("Whole text should become the content, got %q", got.Content)
	}
}

func TestParse_MarkerWithoutTitle(t *testing.T) {
	got := Parse("CONTENT:\nBody only, no title line.")

	if got.Title != DefaultTitle {
		t.Errorf("Expected default title, got %q", got.Title)
	}
	if got.Content != "Body only, no title line." {
		t.Errorf("Unexpected content: %q", got.Content)
	}
}

func TestParse_TrimsBlankEdges(t *testing.T) {
	raw := "TITLE: T\nCONTENT:\n\n\nbody\n\n"

	got := Parse(raw)

	if got.Content != "body" {
		t.Errorf("Leading/trailing blank lines should be stripped, got %q", got.Content)
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"one two three", 3},
		{"one two  three", 3},
		{"one", 1},
		{"", 1},
		{"  leading and trailing  ", 5},
	}
	for _, c := range cases {
		if got := CountWords(c.in); got != c.want {
			t.Errorf("CountWords(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
