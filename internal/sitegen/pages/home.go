package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
)

// Home generates the homepage at /index.html: framework cards with snippet
// counts and the site-wide ItemList.
func Home(env *Env) []Page {
	total := 0
	for _, fw := range env.Frameworks {
		total += env.snippetCount(fw.ID)
	}

	var b strings.Builder
	b.WriteString(markup.FrameworkNav(env.Frameworks, ""))
	fmt.Fprintf(&b, "<main><h1>%s</h1>\n", markup.Escape(env.Site.Name))
	fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(env.Site.Description))
	fmt.Fprintf(&b, "<p class=\"count\">%d snippets across %d frameworks.</p>\n", total, len(env.Frameworks))

	b.WriteString("<section class=\"frameworks\"><h2>Frameworks</h2>")
	for _, fw := range env.Frameworks {
		fmt.Fprintf(&b, "<article class=\"framework-card\"><h3><a href=\"/framework/%s.html\">%s</a></h3><p>%s</p><p class=\"count\">%d snippets</p></article>\n",
			fw.ID, markup.Escape(fw.Name), markup.Escape(fw.Description), env.snippetCount(fw.ID))
	}
	b.WriteString("</section></main>\n")

	var items []schema.ItemListEntry
	for _, fw := range env.Frameworks {
		items = append(items, schema.ItemListEntry{
			Name: fw.Name,
			URL:  env.url(fmt.Sprintf("/framework/%s.html", fw.ID)),
		})
	}

	return []Page{env.compose(meta.PageHome, "/index.html",
		meta.Context{Description: env.Site.Description, Count: total},
		b.String(),
		env.Schema.ItemList(env.Site.Name, env.Site.Description, items),
	)}
}
