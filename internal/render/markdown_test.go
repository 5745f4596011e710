package render

import (
	"strings"
	"testing"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

func previewItem(title, url, oneLiner string, likes int) *domain.CuratedItem {
	return &domain.CuratedItem{
		ContentRecord: domain.ContentRecord{
			Title:            title,
			URL:              url,
			ImpressionsLikes: likes,
		},
		Editorial: domain.EditorialContent{
			OneLiner:     oneLiner,
			WhyItMatters: "quality discussion",
		},
	}
}

func TestMarkdownPreview(t *testing.T) {
	output := &domain.CurationOutput{
		CuratedAt: "2025-06-15T12:00:00Z",
		Stats:     domain.CurationStats{InputItems: 40, PublishedItems: 2},
		Themes: map[string][]*domain.CuratedItem{
			"AI & LLMs": {
				previewItem("GPT-5 ships", "https://example.com/gpt5", "New release or announcement in large language models", 420),
			},
			"Developer Tools": {
				previewItem("Show HN: tiny profiler", "https://example.com/prof", "New developer tools project worth checking out", 88),
			},
		},
	}

	md := Markdown(output)

	for _, want := range []string{
		"# AI & Tech Newsletter Preview",
		"*Curated: 2025-06-15*",
		"**2 stories** curated from 40 scraped",
		"## AI & LLMs",
		"### [GPT-5 ships](https://example.com/gpt5)",
		"**Why it matters:** quality discussion",
		"420 points",
		"## Developer Tools",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("preview missing %q\n%s", want, md)
		}
	}

	// Sections come out in sorted name order.
	if strings.Index(md, "## AI & LLMs") > strings.Index(md, "## Developer Tools") {
		t.Error("themes must render in sorted order")
	}
}

func TestMarkdownCapsItemsPerTheme(t *testing.T) {
	items := make([]*domain.CuratedItem, 7)
	for i := range items {
		items[i] = previewItem("story", "https://example.com", "one liner", 10)
	}

	md := Markdown(&domain.CurationOutput{
		CuratedAt: "2025-06-15T12:00:00Z",
		Themes:    map[string][]*domain.CuratedItem{"AI & LLMs": items},
	})

	if got := strings.Count(md, "### ["); got != itemsPerTheme {
		t.Errorf("rendered %d items, want %d", got, itemsPerTheme)
	}
}

func TestMarkdownFallbacks(t *testing.T) {
	item := &domain.CuratedItem{
		ContentRecord: domain.ContentRecord{
			Metadata: map[string]any{"hn_url": "https://news.ycombinator.com/item?id=7"},
		},
	}

	md := Markdown(&domain.CurationOutput{
		CuratedAt: "2025-06-15T12:00:00Z",
		Themes:    map[string][]*domain.CuratedItem{"Other Notable": {item}},
	})

	if !strings.Contains(md, "### [Untitled](https://news.ycombinator.com/item?id=7)") {
		t.Errorf("missing fallback heading:\n%s", md)
	}
}
