package pages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
)

// Search generates one results page per vocabulary query at
// /search/<slug>.html, scoring every snippet across all frameworks.
// Queries matching nothing produce no page.
func Search(env *Env) []Page {
	refs := env.refs()

	var out []Page
	for _, query := range env.Vocab.Queries {
		slug := content.Slugify(query)
		if slug == "" {
			continue
		}

		results := scoreRefs(refs, query)
		if len(results) == 0 {
			continue
		}

		path := fmt.Sprintf("/search/%s.html", slug)
		crumbs := []markup.Crumb{
			{Name: "Home", URL: env.url("/")},
			{Name: fmt.Sprintf("Search: %s", query)},
		}

		var b strings.Builder
		b.WriteString(markup.FrameworkNav(env.Frameworks, ""))
		b.WriteString(markup.Breadcrumbs(crumbs))
		fmt.Fprintf(&b, "<main><h1>Snippets for &quot;%s&quot;</h1>\n", markup.Escape(query))
		fmt.Fprintf(&b, "<p class=\"count\">%d matching snippets.</p>\n", len(results))
		b.WriteString("<div class=\"snippet-grid\">")
		for _, r := range results {
			href := fmt.Sprintf("/snippet/%s/%s/%s.html", r.Ref.Framework.ID, r.Ref.Category.ID, r.Ref.Snippet.ID)
			b.WriteString(markup.SnippetCard(href,
				fmt.Sprintf("%s (%s)", r.Ref.Snippet.Title(), r.Ref.Framework.Name),
				r.Ref.Snippet.Description))
		}
		b.WriteString("</div></main>\n")

		var items []schema.ItemListEntry
		for _, r := range results {
			items = append(items, schema.ItemListEntry{
				Name: r.Ref.Snippet.Title(),
				URL:  env.url(fmt.Sprintf("/snippet/%s/%s/%s.html", r.Ref.Framework.ID, r.Ref.Category.ID, r.Ref.Snippet.ID)),
			})
		}

		out = append(out, env.compose(meta.PageSearch, path,
			meta.Context{Label: query, Count: len(results)},
			b.String(),
			env.Schema.ItemList(fmt.Sprintf("Snippets for %q", query), "", items),
			env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
		))
	}
	return out
}

// stableSortByScore orders scored references by descending score, keeping
// ties in input order.
func stableSortByScore(refs []scoredRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Score > refs[j].Score
	})
}
