package output

import (
	"fmt"
	"sort"
	"strings"
)

// LlmsEntry is one linked line of the llms.txt document.
type LlmsEntry struct {
	Title       string
	URL         string
	Description string
}

// GenerateLlmsTxt renders an llms.txt document in the llmstxt.org format:
// site header, tagline, snippet listing sorted by title, and hub sections.
func GenerateLlmsTxt(siteName, tagline string, snippets []LlmsEntry, sections map[string][]LlmsEntry, sectionOrder []string) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("# %s", siteName), "")
	if tagline != "" {
		lines = append(lines, fmt.Sprintf("> %s", tagline), "")
	}

	lines = append(lines, "## Snippets")
	sorted := make([]LlmsEntry, len(snippets))
	copy(sorted, snippets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })
	for _, e := range sorted {
		if e.Description != "" {
			lines = append(lines, fmt.Sprintf("- [%s](%s): %s", e.Title, e.URL, e.Description))
		} else {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", e.Title, e.URL))
		}
	}
	lines = append(lines, "")

	for _, name := range sectionOrder {
		entries := sections[name]
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("## %s", name))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", e.Title, e.URL))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
