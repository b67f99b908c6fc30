package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
)

// Frameworks generates one hub page per framework at
// /framework/<frameworkId>.html.
func Frameworks(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		categories := env.Categories[fw.ID]
		path := fmt.Sprintf("/framework/%s.html", fw.ID)
		count := env.snippetCount(fw.ID)

		crumbs := env.frameworkCrumbs(fw)

		var b strings.Builder
		b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
		b.WriteString(markup.Breadcrumbs(crumbs))
		fmt.Fprintf(&b, "<main><h1>%s Snippets</h1>\n", markup.Escape(fw.Name))
		fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(fw.Description))
		fmt.Fprintf(&b, "<p class=\"count\">%d snippets across %d categories.</p>\n", count, len(categories))

		b.WriteString("<section class=\"categories\"><h2>Categories</h2>")
		for _, cat := range categories {
			href := fmt.Sprintf("/framework/%s/%s.html", fw.ID, cat.ID)
			fmt.Fprintf(&b, "<article class=\"category-card\"><h3><a href=\"%s\">%s</a></h3><p>%s</p><p class=\"count\">%d snippets</p></article>\n",
				href, markup.Escape(cat.Title), markup.Escape(cat.Description), len(cat.Snippets))
		}
		b.WriteString("</section></main>\n")

		out = append(out, env.compose(meta.PageFramework, path,
			meta.Context{Framework: fw.Name, Description: fw.Description, Count: count},
			b.String(),
			env.Schema.SoftwareApplication(fw, count, env.url(path)),
			env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
		))
	}
	return out
}

// Categories generates one page per framework category at
// /framework/<frameworkId>/<categoryId>.html with the snippet grid in
// input order.
func Categories(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		for _, cat := range env.Categories[fw.ID] {
			path := fmt.Sprintf("/framework/%s/%s.html", fw.ID, cat.ID)

			crumbs := append(env.frameworkCrumbs(fw), markup.Crumb{Name: cat.Title})

			var b strings.Builder
			b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
			b.WriteString(markup.Breadcrumbs(crumbs))
			fmt.Fprintf(&b, "<main><h1>%s %s</h1>\n", markup.Escape(fw.Name), markup.Escape(cat.Title))
			fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(cat.Description))
			b.WriteString(markup.CategoryNav(fw.ID, env.Categories[fw.ID], cat.ID))
			b.WriteString(markup.SnippetGrid(fw.ID, cat.ID, cat.Snippets))
			b.WriteString("</main>\n")

			var items []schema.ItemListEntry
			for _, s := range cat.Snippets {
				items = append(items, schema.ItemListEntry{
					Name: s.Title(),
					URL:  env.url(fmt.Sprintf("/snippet/%s/%s/%s.html", fw.ID, cat.ID, s.ID)),
				})
			}

			out = append(out, env.compose(meta.PageCategory, path,
				meta.Context{Framework: fw.Name, Category: cat.Title, Description: cat.Description, Count: len(cat.Snippets)},
				b.String(),
				env.Schema.ItemList(fmt.Sprintf("%s %s", fw.Name, cat.Title), cat.Description, items),
				env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
			))
		}
	}
	return out
}
