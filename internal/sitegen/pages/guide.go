package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/match"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
)

// Guides generates one tutorial page per framework and topic at
// /guide/<slug>.html where slug = slugify("<frameworkId>-<topicId>").
// When a hand-written article exists for the pair its markdown body
// replaces the generated outline.
func Guides(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		for _, topic := range env.Vocab.Topics {
			slug := content.SlugOr(fw.ID+"-"+topic.ID, topic.ID)
			path := fmt.Sprintf("/guide/%s.html", slug)

			crumbs := append(env.frameworkCrumbs(fw), markup.Crumb{Name: topic.Title})

			var b strings.Builder
			b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
			b.WriteString(markup.Breadcrumbs(crumbs))
			fmt.Fprintf(&b, "<main><h1>%s: %s</h1>\n", markup.Escape(fw.Name), markup.Escape(topic.Title))
			fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(topic.Description))

			if article, ok := env.Guides[fw.ID+"/"+topic.ID]; ok {
				b.WriteString("<article class=\"guide-body\">")
				b.WriteString(markup.Markdown(article.Body))
				b.WriteString("</article>\n")
			} else {
				b.WriteString("<section class=\"guide-outline\"><h2>In this guide</h2><ol>")
				for _, section := range topic.Sections {
					fmt.Fprintf(&b, "<li>%s</li>", markup.Escape(section))
				}
				b.WriteString("</ol></section>\n")
			}

			if related := relatedSnippets(env, fw, topic.Title, 6); related != "" {
				b.WriteString(related)
			}
			b.WriteString("</main>\n")

			out = append(out, env.compose(meta.PageGuide, path,
				meta.Context{Framework: fw.Name, Label: topic.Title, Description: topic.Description},
				b.String(),
				env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
			))
		}
	}
	return out
}

// relatedSnippets scores the framework's snippets against the topic title
// and renders up to limit cards, or "" when nothing matches.
func relatedSnippets(env *Env, fw content.Framework, query string, limit int) string {
	var refs []SnippetRef
	for _, cat := range env.Categories[fw.ID] {
		for _, s := range cat.Snippets {
			refs = append(refs, SnippetRef{Framework: fw, Category: cat, Snippet: s})
		}
	}

	var matched []SnippetRef
	for _, r := range scoreRefs(refs, query) {
		matched = append(matched, r.Ref)
		if len(matched) == limit {
			break
		}
	}
	if len(matched) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<section class=\"related\"><h2>Related snippets</h2>")
	b.WriteString(refGrid(matched))
	b.WriteString("</section>\n")
	return b.String()
}

// scoredRef pairs a snippet reference with its query score.
type scoredRef struct {
	Ref   SnippetRef
	Score int
}

// scoreRefs scores references against a query, returning positive scorers
// in descending score order with ties in input order.
func scoreRefs(refs []SnippetRef, query string) []scoredRef {
	var out []scoredRef
	for _, r := range refs {
		if score := match.Score(match.SearchableText(r.Snippet), r.Snippet.Name, query); score > 0 {
			out = append(out, scoredRef{Ref: r, Score: score})
		}
	}
	stableSortByScore(out)
	return out
}
