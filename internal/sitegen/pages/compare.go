package pages

import (
	"fmt"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/markup"
	"github.com/snipforge/snipforge/internal/sitegen/meta"
)

// categoryDiff is the per-category comparison of two frameworks: snippets
// present in both, matched by name.
type categoryDiff struct {
	Category string
	Common   []string // display names
	OnlyA    int
	OnlyB    int
}

// Compare generates one page per hand-curated framework pair at
// /compare/<slug>.html where slug = slugify("<NameA>-vs-<NameB>"). For
// each category shared by both frameworks it intersects the snippet lists
// by name to find common entries.
func Compare(env *Env) []Page {
	var out []Page
	for _, pair := range env.ComparePairs {
		a, okA := env.frameworkByID(pair[0])
		b, okB := env.frameworkByID(pair[1])
		if !okA || !okB {
			env.Log.Warn("skipping comparison with unknown framework", "pair", fmt.Sprintf("%s/%s", pair[0], pair[1]))
			continue
		}
		out = append(out, comparePage(env, a, b))
	}
	return out
}

func comparePage(env *Env, a, b content.Framework) Page {
	label := fmt.Sprintf("%s vs %s", a.Name, b.Name)
	slug := content.Slugify(fmt.Sprintf("%s-vs-%s", a.Name, b.Name))
	path := fmt.Sprintf("/compare/%s.html", slug)

	diffs := diffCategories(env.Categories[a.ID], env.Categories[b.ID])

	crumbs := []markup.Crumb{
		{Name: "Home", URL: env.url("/")},
		{Name: label},
	}

	var sb strings.Builder
	sb.WriteString(markup.FrameworkNav(env.Frameworks, ""))
	sb.WriteString(markup.Breadcrumbs(crumbs))
	fmt.Fprintf(&sb, "<main><h1>%s</h1>\n", markup.Escape(label))
	fmt.Fprintf(&sb, "<p class=\"lede\">Snippet coverage compared between <a href=\"/framework/%s.html\">%s</a> and <a href=\"/framework/%s.html\">%s</a>.</p>\n",
		a.ID, markup.Escape(a.Name), b.ID, markup.Escape(b.Name))

	for _, d := range diffs {
		fmt.Fprintf(&sb, "<section class=\"compare-category\"><h2>%s</h2>\n", markup.Escape(d.Category))
		if len(d.Common) > 0 {
			sb.WriteString("<h3>Available in both</h3><ul>")
			for _, name := range d.Common {
				fmt.Fprintf(&sb, "<li>%s</li>", markup.Escape(name))
			}
			sb.WriteString("</ul>")
		}
		fmt.Fprintf(&sb, "<p class=\"count\">%d shared, %d only in %s, %d only in %s.</p>",
			len(d.Common), d.OnlyA, markup.Escape(a.Name), d.OnlyB, markup.Escape(b.Name))
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</main>\n")

	return env.compose(meta.PageCompare, path,
		meta.Context{Label: label, Description: fmt.Sprintf("%s and %s snippet catalogs side by side.", a.Name, b.Name)},
		sb.String(),
		env.Schema.Breadcrumbs(toBreadcrumbItems(crumbs)),
	)
}

// diffCategories intersects the two frameworks' snippet lists per shared
// category, matching by snippet name. Category order follows the first
// framework.
func diffCategories(catsA, catsB []content.Category) []categoryDiff {
	byID := make(map[string]content.Category, len(catsB))
	for _, c := range catsB {
		byID[c.ID] = c
	}

	var diffs []categoryDiff
	for _, ca := range catsA {
		cb, ok := byID[ca.ID]
		if !ok {
			continue
		}

		namesB := make(map[string]bool, len(cb.Snippets))
		for _, s := range cb.Snippets {
			namesB[s.Name] = true
		}

		d := categoryDiff{Category: ca.Title}
		seen := make(map[string]bool, len(ca.Snippets))
		for _, s := range ca.Snippets {
			seen[s.Name] = true
			if namesB[s.Name] {
				d.Common = append(d.Common, s.Title())
			} else {
				d.OnlyA++
			}
		}
		for _, s := range cb.Snippets {
			if !seen[s.Name] {
				d.OnlyB++
			}
		}
		diffs = append(diffs, d)
	}
	return diffs
}
