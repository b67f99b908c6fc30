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

// Patterns generates one page per framework and matched design pattern at
// /pattern/<slug>.html where slug = slugify("<frameworkId>-<patternId>").
// Unlike tags there is no fallback bucket: unmatched patterns produce no
// page.
func Patterns(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		for _, p := range env.Vocab.Patterns {
			var matched []SnippetRef
			for _, cat := range env.Categories[fw.ID] {
				for _, s := range cat.Snippets {
					if match.MatchesAny(match.SearchableText(s), p.Keywords) {
						matched = append(matched, SnippetRef{Framework: fw, Category: cat, Snippet: s})
					}
				}
			}
			if len(matched) == 0 {
				continue
			}

			slug := content.SlugOr(fw.ID+"-"+p.ID, p.ID)
			path := fmt.Sprintf("/pattern/%s.html", slug)

			crumbs := append(env.frameworkCrumbs(fw), markup.Crumb{Name: p.Name + " Pattern"})

			var b strings.Builder
			b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
			b.WriteString(markup.Breadcrumbs(crumbs))
			fmt.Fprintf(&b, "<main><h1>%s Pattern in %s</h1>\n", markup.Escape(p.Name), markup.Escape(fw.Name))
			fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(p.Description))
			b.WriteString(refGrid(matched))
			b.WriteString("</main>\n")

			var items []schema.ItemListEntry
			for _, r := range matched {
				items = append(items, schema.ItemListEntry{
					Name: r.Snippet.Title(),
					URL:  env.url(fmt.Sprintf("/snippet/%s/%s/%s.html", r.Framework.ID, r.Category.ID, r.Snippet.ID)),
				})
			}

			out = append(out, env.compose(meta.PagePattern, path,
				meta.Context{Framework: fw.Name, Label: p.Name, Description: p.Description, Count: len(matched)},
				b.String(),
				env.Schema.ItemList(fmt.Sprintf("%s pattern in %s", p.Name, fw.Name), p.Description, items),
				env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
			))
		}
	}
	return out
}
