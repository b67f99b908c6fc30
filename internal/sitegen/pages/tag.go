package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/match"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
	"github.com/snipforge/snipforge/internal/sitegen/vocab"
)

// Tags generates one page per framework and populated tag at
// /tag/<frameworkId>/<slug>.html. Snippets matching no tag land in the
// general bucket, which gets its own page when populated.
func Tags(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		buckets := make(map[string][]SnippetRef)
		for _, cat := range env.Categories[fw.ID] {
			for _, s := range cat.Snippets {
				ref := SnippetRef{Framework: fw, Category: cat, Snippet: s}
				for _, tagID := range match.Tags(s, env.Vocab.Tags) {
					buckets[tagID] = append(buckets[tagID], ref)
				}
			}
		}

		for _, tag := range env.Vocab.Tags {
			if refs := buckets[tag.ID]; len(refs) > 0 {
				out = append(out, tagPage(env, fw, tag.ID, tag.Label, refs))
			}
		}
		if refs := buckets[vocab.GeneralBucket]; len(refs) > 0 {
			out = append(out, tagPage(env, fw, vocab.GeneralBucket, "General", refs))
		}
	}
	return out
}

func tagPage(env *Env, fw content.Framework, tagID, label string, refs []SnippetRef) Page {
	slug := content.SlugOr(tagID, label)
	path := fmt.Sprintf("/tag/%s/%s.html", fw.ID, slug)

	crumbs := append(env.frameworkCrumbs(fw), markup.Crumb{Name: label})

	var b strings.Builder
	b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
	b.WriteString(markup.Breadcrumbs(crumbs))
	fmt.Fprintf(&b, "<main><h1>%s %s Snippets</h1>\n", markup.Escape(fw.Name), markup.Escape(label))
	fmt.Fprintf(&b, "<p class=\"count\">%d snippets tagged %s.</p>\n", len(refs), markup.Escape(label))
	b.WriteString(refGrid(refs))
	b.WriteString("</main>\n")

	var items []schema.ItemListEntry
	for _, r := range refs {
		items = append(items, schema.ItemListEntry{
			Name: r.Snippet.Title(),
			URL:  env.url(fmt.Sprintf("/snippet/%s/%s/%s.html", r.Framework.ID, r.Category.ID, r.Snippet.ID)),
		})
	}

	return env.compose(meta.PageTag, path,
		meta.Context{Framework: fw.Name, Label: label, Count: len(refs)},
		b.String(),
		env.Schema.ItemList(fmt.Sprintf("%s %s snippets", fw.Name, label), "", items),
		env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
	)
}
