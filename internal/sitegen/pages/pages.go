// Package pages contains the page generators. Each generator is a
// straight-line pipeline per content item: derive slug and path, classify,
// synthesize metadata and structured data, render markup, compose the full
// document, and emit a Page record. Generators own disjoint path prefixes,
// so the set of emitted paths is unique by construction.
package pages

import (
	"fmt"
	"log/slog"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
	"github.com/snipforge/snipforge/internal/sitegen/vocab"
)

// Page is the output unit of every generator. Path is the page's logical
// path ("/snippet/express/middleware/cors.html") relative to the output
// root; Content is the full serialized document; Meta feeds the sitemap.
type Page struct {
	Type    string
	Path    string
	Content string
	Meta    meta.Metadata
}

// SnippetRef locates a snippet within the catalog hierarchy.
type SnippetRef struct {
	Framework content.Framework
	Category  content.Category
	Snippet   content.Snippet
}

// Env carries the immutable inputs shared by all generators: the loaded
// catalog, the injected vocabularies, and the synthesizers.
type Env struct {
	Site         schema.Site
	Frameworks   []content.Framework
	Categories   map[string][]content.Category // framework id -> categories
	Sources      func(frameworkID, snippetID string) string
	Guides       map[string]content.GuideArticle // "<framework>/<topic>"
	Vocab        vocab.Set
	ComparePairs [][2]string
	Schema       *schema.Generator
	Log          *slog.Logger
}

// compose builds the final Page: metadata, site-wide WebSite JSON-LD plus
// page-specific blocks, and the full document.
func (e *Env) compose(pt meta.PageType, path string, mctx meta.Context, body string, schemas ...map[string]interface{}) Page {
	mctx.SiteName = e.Site.Name
	mctx.Path = path
	m := meta.Generate(e.Site.Origin, pt, mctx)

	all := append([]map[string]interface{}{e.Schema.WebSite()}, schemas...)
	jsonLD := schema.Marshal(all...)

	return Page{
		Type:    string(pt),
		Path:    path,
		Meta:    m,
		Content: markup.FullPage(m, body, jsonLD),
	}
}

// url returns the absolute URL for a logical path.
func (e *Env) url(path string) string {
	return e.Site.Origin + path
}

// frameworkByID looks up a framework in the static catalog.
func (e *Env) frameworkByID(id string) (content.Framework, bool) {
	for _, fw := range e.Frameworks {
		if fw.ID == id {
			return fw, true
		}
	}
	return content.Framework{}, false
}

// snippetCount counts a framework's snippets across all categories.
func (e *Env) snippetCount(frameworkID string) int {
	n := 0
	for _, cat := range e.Categories[frameworkID] {
		n += len(cat.Snippets)
	}
	return n
}

// refs flattens the catalog into snippet references, preserving framework,
// category, and snippet input order.
func (e *Env) refs() []SnippetRef {
	var out []SnippetRef
	for _, fw := range e.Frameworks {
		for _, cat := range e.Categories[fw.ID] {
			for _, s := range cat.Snippets {
				out = append(out, SnippetRef{Framework: fw, Category: cat, Snippet: s})
			}
		}
	}
	return out
}

// frameworkCrumbs builds the common Home > Framework breadcrumb prefix.
func (e *Env) frameworkCrumbs(fw content.Framework) []markup.Crumb {
	return []markup.Crumb{
		{Name: "Home", URL: e.url("/")},
		{Name: fw.Name, URL: e.url(fmt.Sprintf("/framework/%s.html", fw.ID))},
	}
}

// toBreadcrumbItems converts markup crumbs to schema breadcrumb items.
func toBreadcrumbItems(crumbs []markup.Crumb) []schema.BreadcrumbItem {
	items := make([]schema.BreadcrumbItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = schema.BreadcrumbItem{Name: c.Name, URL: c.URL}
	}
	// The active crumb is inert in the nav and carries no item URL.
	items[len(items)-1].URL = ""
	return items
}
