// Package meta synthesizes page titles, meta descriptions, canonical URLs
// and Open Graph fields from per-page-type templates.
package meta

import "fmt"

// PageType selects the metadata template.
type PageType string

const (
	PageHome      PageType = "home"
	PageFramework PageType = "framework"
	PageCategory  PageType = "category"
	PageSnippet   PageType = "snippet"
	PageUseCase   PageType = "use-case"
	PageCompare   PageType = "compare"
	PageGuide     PageType = "guide"
	PageTag       PageType = "tag"
	PageSearch    PageType = "search"
	PagePattern   PageType = "pattern"
)

// Metadata is the synthesized head metadata for a generated page.
type Metadata struct {
	Title         string
	Description   string
	Canonical     string
	OGTitle       string
	OGDescription string
	OGImage       string
	Noindex       bool
}

// Context carries the fields the templates interpolate. All fields are
// optional: templates substitute empty strings for anything missing and
// never fail on partial context.
type Context struct {
	SiteName    string
	Framework   string // display name
	Category    string
	Snippet     string
	Label       string // use case / tag / pattern / topic / query label
	Description string
	Count       int

	// Path is the page's logical path ("/snippet/express/middleware/cors.html").
	// The canonical URL is origin + Path and must match the emitted file
	// path modulo the output root.
	Path string
}

// Generate produces metadata for a page type from the given context.
// origin must not end with a slash.
func Generate(origin string, pt PageType, ctx Context) Metadata {
	var title, desc string

	switch pt {
	case PageHome:
		title = fmt.Sprintf("%s — Backend Snippets, Templates & Starters", ctx.SiteName)
		desc = ctx.Description
		if desc == "" {
			desc = fmt.Sprintf("Browse %d production-ready backend code snippets across frameworks.", ctx.Count)
		}
	case PageFramework:
		title = fmt.Sprintf("%s Code Snippets — %s", ctx.Framework, ctx.SiteName)
		desc = fmt.Sprintf("%d reusable %s snippets: middleware, auth, validation and more. %s", ctx.Count, ctx.Framework, ctx.Description)
	case PageCategory:
		title = fmt.Sprintf("%s %s Snippets — %s", ctx.Framework, ctx.Category, ctx.SiteName)
		desc = fmt.Sprintf("%d %s snippets for %s. %s", ctx.Count, ctx.Category, ctx.Framework, ctx.Description)
	case PageSnippet:
		title = fmt.Sprintf("%s for %s — %s", ctx.Snippet, ctx.Framework, ctx.SiteName)
		desc = ctx.Description
		if desc == "" {
			desc = fmt.Sprintf("Install and use %s in your %s project.", ctx.Snippet, ctx.Framework)
		}
	case PageUseCase:
		title = fmt.Sprintf("%s in %s — %s", ctx.Label, ctx.Framework, ctx.SiteName)
		desc = fmt.Sprintf("%d %s snippets solving %s. %s", ctx.Count, ctx.Framework, ctx.Label, ctx.Description)
	case PageCompare:
		title = fmt.Sprintf("%s — %s", ctx.Label, ctx.SiteName)
		desc = fmt.Sprintf("Compare snippet coverage: %s. %s", ctx.Label, ctx.Description)
	case PageGuide:
		title = fmt.Sprintf("%s %s Guide — %s", ctx.Framework, ctx.Label, ctx.SiteName)
		desc = fmt.Sprintf("A practical %s guide to %s. %s", ctx.Framework, ctx.Label, ctx.Description)
	case PageTag:
		title = fmt.Sprintf("%s %s Snippets — %s", ctx.Framework, ctx.Label, ctx.SiteName)
		desc = fmt.Sprintf("%d %s snippets tagged %s.", ctx.Count, ctx.Framework, ctx.Label)
	case PageSearch:
		title = fmt.Sprintf("%s — Snippet Search — %s", ctx.Label, ctx.SiteName)
		desc = fmt.Sprintf("%d snippets matching %q across all frameworks.", ctx.Count, ctx.Label)
	case PagePattern:
		title = fmt.Sprintf("%s Pattern in %s — %s", ctx.Label, ctx.Framework, ctx.SiteName)
		desc = fmt.Sprintf("%s snippets implementing the %s pattern. %s", ctx.Framework, ctx.Label, ctx.Description)
	default:
		title = ctx.SiteName
		desc = ctx.Description
	}

	return Metadata{
		Title:         title,
		Description:   desc,
		Canonical:     origin + ctx.Path,
		OGTitle:       title,
		OGDescription: desc,
	}
}
