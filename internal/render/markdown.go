// Package render produces a human-readable markdown preview of a curated
// output document.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

// itemsPerTheme caps how many stories each section shows in the preview.
const itemsPerTheme = 5

// Markdown renders a newsletter preview. Themes are emitted in sorted
// name order so the preview is stable across runs.
func Markdown(output *domain.CurationOutput) string {
	var b strings.Builder

	curatedDate := output.CuratedAt
	if len(curatedDate) > 10 {
		curatedDate = curatedDate[:10]
	}

	fmt.Fprintf(&b, "# AI & Tech Newsletter Preview\n")
	fmt.Fprintf(&b, "*Curated: %s*\n\n", curatedDate)
	fmt.Fprintf(&b, "**%d stories** curated from %d scraped\n\n",
		output.Stats.PublishedItems, output.Stats.InputItems)

	themes := make([]string, 0, len(output.Themes))
	for theme := range output.Themes {
		themes = append(themes, theme)
	}
	sort.Strings(themes)

	for _, theme := range themes {
		fmt.Fprintf(&b, "## %s\n\n", theme)

		items := output.Themes[theme]
		if len(items) > itemsPerTheme {
			items = items[:itemsPerTheme]
		}
		for _, item := range items {
			title := item.Title
			if title == "" {
				title = "Untitled"
			}
			url := item.DiscussionURL()
			if url == "" {
				url = "#"
			}

			fmt.Fprintf(&b, "### [%s](%s)\n", title, url)
			fmt.Fprintf(&b, "*%s*\n\n", item.Editorial.OneLiner)
			fmt.Fprintf(&b, "**Why it matters:** %s\n\n", item.Editorial.WhyItMatters)
			fmt.Fprintf(&b, "%d points\n\n", item.ImpressionsLikes)
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}
