// Package markup builds HTML fragments and composes full documents.
// Renderers are pure functions over structured content. Free-text fields
// are HTML-escaped; pre-built markup (JSON-LD blocks, rendered markdown,
// FAQ answers) is trusted and callers must pre-escape anything
// user-influenced placed into it.
package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
)

// Crumb is one breadcrumb navigation item. An empty URL marks the active
// (inert) item; every breadcrumb trail ends with one.
type Crumb struct {
	Name string
	URL  string
}

// FAQ is a question-answer pair. Question is escaped on render; Answer is
// trusted HTML so generated answers may carry inline <code> tags.
type FAQ struct {
	Question string
	Answer   string
}

// Head renders the document head: title, description, canonical, Open
// Graph and Twitter Card tags, JSON-LD blocks, and the stylesheet link.
func Head(m meta.Metadata, jsonLD string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(m.Title))
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(m.Description))
	if m.Noindex {
		b.WriteString("<meta name=\"robots\" content=\"noindex\">\n")
	}
	fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", html.EscapeString(m.Canonical))

	ogTitle := m.OGTitle
	if ogTitle == "" {
		ogTitle = m.Title
	}
	ogDesc := m.OGDescription
	if ogDesc == "" {
		ogDesc = m.Description
	}
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", html.EscapeString(ogTitle))
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", html.EscapeString(ogDesc))
	fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", html.EscapeString(m.Canonical))
	b.WriteString("<meta property=\"og:type\" content=\"website\">\n")
	if m.OGImage != "" {
		fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", html.EscapeString(m.OGImage))
	}
	b.WriteString("<meta name=\"twitter:card\" content=\"summary\">\n")
	fmt.Fprintf(&b, "<meta name=\"twitter:title\" content=\"%s\">\n", html.EscapeString(ogTitle))
	fmt.Fprintf(&b, "<meta name=\"twitter:description\" content=\"%s\">\n", html.EscapeString(ogDesc))
	if jsonLD != "" {
		b.WriteString(jsonLD)
		b.WriteString("\n")
	}
	b.WriteString("<link rel=\"stylesheet\" href=\"/assets/site.css\">\n")
	b.WriteString("</head>\n<body>\n")
	return b.String()
}

// Footer renders the shared document footer and closes the body.
func Footer() string {
	return "<footer class=\"site-footer\"><p>Generated by SnipForge.</p></footer>\n" +
		"<script src=\"/assets/site.js\" defer></script>\n</body>\n</html>\n"
}

// FullPage composes head + body content + footer. Deterministic
// concatenation, no reordering.
func FullPage(m meta.Metadata, body, jsonLD string) string {
	return Head(m, jsonLD) + body + Footer()
}

// Breadcrumbs renders breadcrumb navigation. Every item except the last is
// a hyperlink; the last is inert text.
func Breadcrumbs(crumbs []Crumb) string {
	if len(crumbs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<nav class=\"breadcrumbs\" aria-label=\"Breadcrumb\"><ol>")
	for i, c := range crumbs {
		name := html.EscapeString(c.Name)
		if i < len(crumbs)-1 && c.URL != "" {
			fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a></li>", html.EscapeString(c.URL), name)
		} else {
			fmt.Fprintf(&b, "<li aria-current=\"page\">%s</li>", name)
		}
	}
	b.WriteString("</ol></nav>\n")
	return b.String()
}

// CodeBlock renders a language-tagged, HTML-escaped code block with a
// decorative copy button carrying data-code-id for the client script.
func CodeBlock(lang, code, codeID string) string {
	var b strings.Builder
	b.WriteString("<div class=\"code-block\">")
	fmt.Fprintf(&b, "<button class=\"copy-btn\" data-code-id=\"%s\">Copy</button>", html.EscapeString(codeID))
	fmt.Fprintf(&b, "<pre><code id=\"%s\" class=\"language-%s\">%s</code></pre>",
		html.EscapeString(codeID), html.EscapeString(lang), html.EscapeString(code))
	b.WriteString("</div>\n")
	return b.String()
}

// FAQSection renders collapsible FAQ entries. Question text is escaped;
// answer is trusted HTML.
func FAQSection(faqs []FAQ) string {
	if len(faqs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<section class=\"faq\"><h2>Frequently Asked Questions</h2>\n")
	for _, f := range faqs {
		fmt.Fprintf(&b, "<details><summary>%s</summary><div class=\"faq-answer\">%s</div></details>\n",
			html.EscapeString(f.Question), f.Answer)
	}
	b.WriteString("</section>\n")
	return b.String()
}

// FeatureList renders a snippet's feature bullet list.
func FeatureList(features []string) string {
	if len(features) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<section class=\"features\"><h2>Features</h2><ul>")
	for _, f := range features {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(f))
	}
	b.WriteString("</ul></section>\n")
	return b.String()
}

// Installation renders the install command and dependency list.
func Installation(command string, deps []string) string {
	if command == "" && len(deps) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<section class=\"installation\"><h2>Installation</h2>")
	if command != "" {
		b.WriteString(CodeBlock("bash", command, "install-cmd"))
	}
	if len(deps) > 0 {
		b.WriteString("<h3>Dependencies</h3><ul>")
		for _, d := range deps {
			fmt.Fprintf(&b, "<li><code>%s</code></li>", html.EscapeString(d))
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</section>\n")
	return b.String()
}

// Usage renders the usage section from a markdown document.
func Usage(usageMarkdown string) string {
	if usageMarkdown == "" {
		return ""
	}
	return "<section class=\"usage\"><h2>Usage</h2>" + Markdown(usageMarkdown) + "</section>\n"
}

// FrameworkNav renders the framework navigation bar, marking the active
// framework.
func FrameworkNav(frameworks []content.Framework, activeID string) string {
	var b strings.Builder
	b.WriteString("<nav class=\"framework-nav\"><ul>")
	for _, fw := range frameworks {
		cls := ""
		if fw.ID == activeID {
			cls = " class=\"active\""
		}
		fmt.Fprintf(&b, "<li%s><a href=\"/framework/%s.html\">%s</a></li>",
			cls, html.EscapeString(fw.ID), html.EscapeString(fw.Name))
	}
	b.WriteString("</ul></nav>\n")
	return b.String()
}

// CategoryNav renders a framework's category navigation, marking the
// active category.
func CategoryNav(frameworkID string, categories []content.Category, activeID string) string {
	var b strings.Builder
	b.WriteString("<nav class=\"category-nav\"><ul>")
	for _, c := range categories {
		cls := ""
		if c.ID == activeID {
			cls = " class=\"active\""
		}
		fmt.Fprintf(&b, "<li%s><a href=\"/framework/%s/%s.html\">%s</a></li>",
			cls, html.EscapeString(frameworkID), html.EscapeString(c.ID), html.EscapeString(c.Title))
	}
	b.WriteString("</ul></nav>\n")
	return b.String()
}

// SnippetCard renders one snippet card for a grid listing.
func SnippetCard(href, title, description string) string {
	return fmt.Sprintf(
		"<article class=\"snippet-card\"><h3><a href=\"%s\">%s</a></h3><p>%s</p></article>\n",
		html.EscapeString(href), html.EscapeString(title), html.EscapeString(description))
}

// SnippetGrid renders snippet cards in input order, each linking to
// /snippet/<framework>/<category>/<snippet>.html.
func SnippetGrid(frameworkID, categoryID string, snippets []content.Snippet) string {
	var b strings.Builder
	b.WriteString("<div class=\"snippet-grid\">")
	for _, s := range snippets {
		href := fmt.Sprintf("/snippet/%s/%s/%s.html", frameworkID, categoryID, s.ID)
		b.WriteString(SnippetCard(href, s.Title(), s.Description))
	}
	b.WriteString("</div>\n")
	return b.String()
}

// Escape HTML-escapes free text for embedding in trusted-markup slots.
func Escape(s string) string {
	return html.EscapeString(s)
}
