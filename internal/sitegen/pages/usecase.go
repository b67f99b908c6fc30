package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/match"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
)

// UseCases generates one page per framework and matched use case at
// /use-case/<frameworkId>/<slug>.html. Use cases that match no snippet in
// a framework produce no page.
func UseCases(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		categories := env.Categories[fw.ID]
		for _, uc := range env.Vocab.UseCases {
			var matched []SnippetRef
			for _, cat := range categories {
				for _, s := range cat.Snippets {
					if match.MatchesAny(match.SearchableText(s), uc.Keywords) {
						matched = append(matched, SnippetRef{Framework: fw, Category: cat, Snippet: s})
					}
				}
			}
			if len(matched) == 0 {
				continue
			}

			slug := content.SlugOr(uc.Title, uc.ID)
			path := fmt.Sprintf("/use-case/%s/%s.html", fw.ID, slug)

			crumbs := append(env.frameworkCrumbs(fw), markup.Crumb{Name: uc.Title})

			var b strings.Builder
			b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
			b.WriteString(markup.Breadcrumbs(crumbs))
			fmt.Fprintf(&b, "<main><h1>%s in %s</h1>\n", markup.Escape(uc.Title), markup.Escape(fw.Name))
			fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(uc.Description))
			b.WriteString(refGrid(matched))
			b.WriteString("</main>\n")

			var items []schema.ItemListEntry
			for _, r := range matched {
				items = append(items, schema.ItemListEntry{
					Name: r.Snippet.Title(),
					URL:  env.url(fmt.Sprintf("/snippet/%s/%s/%s.html", r.Framework.ID, r.Category.ID, r.Snippet.ID)),
				})
			}

			out = append(out, env.compose(meta.PageUseCase, path,
				meta.Context{Framework: fw.Name, Label: uc.Title, Description: uc.Description, Count: len(matched)},
				b.String(),
				env.Schema.ItemList(uc.Title, uc.Description, items),
				env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
			))
		}
	}
	return out
}

// refGrid renders snippet cards for cross-category listings.
func refGrid(refs []SnippetRef) string {
	var b strings.Builder
	b.WriteString("<div class=\"snippet-grid\">")
	for _, r := range refs {
		href := fmt.Sprintf("/snippet/%s/%s/%s.html", r.Framework.ID, r.Category.ID, r.Snippet.ID)
		b.WriteString(markup.SnippetCard(href, r.Snippet.Title(), r.Snippet.Description))
	}
	b.WriteString("</div>\n")
	return b.String()
}
