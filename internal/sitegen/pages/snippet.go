package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
)

// sourcePlaceholder is rendered when a snippet's source map entry is
// absent; the build degrades rather than failing.
const sourcePlaceholder = "// Source code not available for this snippet."

// Snippets generates one detail page per snippet at
// /snippet/<frameworkId>/<categoryId>/<snippetId>.html.
func Snippets(env *Env) []Page {
	var out []Page
	for _, fw := range env.Frameworks {
		for _, cat := range env.Categories[fw.ID] {
			for _, s := range cat.Snippets {
				out = append(out, snippetPage(env, fw, cat, s))
			}
		}
	}
	return out
}

func snippetPage(env *Env, fw content.Framework, cat content.Category, s content.Snippet) Page {
	path := fmt.Sprintf("/snippet/%s/%s/%s.html", fw.ID, cat.ID, s.ID)

	code := env.Sources(fw.ID, s.ID)
	if code == "" {
		code = sourcePlaceholder
	}

	crumbs := append(env.frameworkCrumbs(fw),
		markup.Crumb{Name: cat.Title, URL: env.url(fmt.Sprintf("/framework/%s/%s.html", fw.ID, cat.ID))},
		markup.Crumb{Name: s.Title()},
	)

	faqs := snippetFAQs(fw, s)

	var b strings.Builder
	b.WriteString(markup.FrameworkNav(env.Frameworks, fw.ID))
	b.WriteString(markup.Breadcrumbs(crumbs))
	fmt.Fprintf(&b, "<main><h1>%s</h1>\n", markup.Escape(s.Title()))
	if s.Purpose != "" {
		fmt.Fprintf(&b, "<p class=\"purpose\">%s</p>\n", markup.Escape(s.Purpose))
	}
	fmt.Fprintf(&b, "<p class=\"lede\">%s</p>\n", markup.Escape(s.Description))
	b.WriteString(markup.FeatureList(s.Features))
	b.WriteString("<section class=\"source\"><h2>Source</h2>")
	b.WriteString(markup.CodeBlock("typescript", code, "snippet-"+s.ID))
	b.WriteString("</section>\n")
	b.WriteString(markup.Installation(s.Command, s.Dependencies))
	b.WriteString(markup.Usage(s.Usage))
	if s.Output != "" {
		b.WriteString("<section class=\"output\"><h2>Output</h2>")
		b.WriteString(markup.CodeBlock("text", s.Output, "output-"+s.ID))
		b.WriteString("</section>\n")
	}
	b.WriteString(markup.FAQSection(faqs))
	b.WriteString("</main>\n")

	var schemaFAQs []schema.FAQ
	for _, f := range faqs {
		schemaFAQs = append(schemaFAQs, schema.FAQ{Question: f.Question, Answer: f.Answer})
	}

	return env.compose(meta.PageSnippet, path,
		meta.Context{Framework: fw.Name, Category: cat.Title, Snippet: s.Title(), Description: s.Description},
		b.String(),
		env.Schema.SoftwareSourceCode(s, fw, env.url(path), code),
		env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
		env.Schema.FAQPage(schemaFAQs),
	)
}

// snippetFAQs synthesizes the FAQ entries for a snippet page. Answers are
// trusted markup, so free text flowing into them is escaped here and only
// the inline <code> tags are emitted raw.
func snippetFAQs(fw content.Framework, s content.Snippet) []markup.FAQ {
	var faqs []markup.FAQ

	purpose := s.Purpose
	if purpose == "" {
		purpose = s.Description
	}
	if purpose != "" {
		faqs = append(faqs, markup.FAQ{
			Question: fmt.Sprintf("What does %s do?", s.Title()),
			Answer:   markup.Escape(purpose),
		})
	}
	if s.Command != "" {
		faqs = append(faqs, markup.FAQ{
			Question: fmt.Sprintf("How do I add %s to a %s project?", s.Title(), fw.Name),
			Answer:   fmt.Sprintf("Run <code>%s</code> in your project root.", markup.Escape(s.Command)),
		})
	}
	if len(s.Dependencies) > 0 {
		var deps []string
		for _, d := range s.Dependencies {
			deps = append(deps, "<code>"+markup.Escape(d)+"</code>")
		}
		faqs = append(faqs, markup.FAQ{
			Question: fmt.Sprintf("What does %s depend on?", s.Title()),
			Answer:   "It requires " + strings.Join(deps, ", ") + ".",
		})
	}
	return faqs
}
