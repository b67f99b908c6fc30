package pages

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
	"github.com/snipforge/snipforge/internal/sitegen/vocab"
)

const origin = "https://snipforge.dev"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEnv() *Env {
	site := schema.Site{Name: "SnipForge", Origin: origin, Description: "Backend snippets."}

	frameworks := []content.Framework{
		{ID: "elysia", Name: "Elysia", Description: "Bun framework."},
		{ID: "express", Name: "Express", Description: "Node framework."},
		{ID: "hono", Name: "Hono", Description: "Edge framework."},
	}

	categories := map[string][]content.Category{
		"elysia": {{
			ID: "middleware", Title: "Middleware", Description: "Request processing.",
			Snippets: []content.Snippet{
				{ID: "rate-limiter", Name: "elysia-rate-limiter", DisplayName: "Rate Limiter",
					Description: "Sliding window rate limiter middleware.", Command: "bunx snipforge add rate-limiter"},
				{ID: "cors", Name: "elysia-cors", DisplayName: "CORS",
					Description: "CORS middleware for cross-origin requests."},
			},
		}},
		"express": {{
			ID: "middleware", Title: "Middleware", Description: "Request processing.",
			Snippets: []content.Snippet{
				{ID: "cors", Name: "cors", DisplayName: "CORS Helper",
					Description: "jwt auth aware cors middleware."},
				{ID: "logger", Name: "logger", DisplayName: "Logger",
					Description: "Request logging middleware."},
			},
		}},
		"hono": {{
			ID: "middleware", Title: "Middleware", Description: "Request processing.",
			Snippets: []content.Snippet{
				{ID: "cors", Name: "cors", DisplayName: "CORS Middleware",
					Description: "Cross-origin middleware."},
			},
		}},
	}

	sources := map[string]string{
		"elysia/cors": "new Elysia().use(cors())",
	}

	return &Env{
		Site:       site,
		Frameworks: frameworks,
		Categories: categories,
		Sources: func(fw, id string) string {
			return sources[fw+"/"+id]
		},
		Guides:       map[string]content.GuideArticle{},
		Vocab:        vocab.Default(),
		ComparePairs: [][2]string{{"express", "hono"}},
		Schema:       schema.NewGenerator(site),
		Log:          discardLogger(),
	}
}

func findPage(t *testing.T, all []Page, path string) Page {
	t.Helper()
	for _, p := range all {
		if p.Path == path {
			return p
		}
	}
	t.Fatalf("no page generated at %s", path)
	return Page{}
}

func TestCategoryPageGrid(t *testing.T) {
	env := testEnv()
	all := Categories(env)
	p := findPage(t, all, "/framework/elysia/middleware.html")

	assert.Equal(t, 2, strings.Count(p.Content, "snippet-card"),
		"exactly one card per snippet")
	first := strings.Index(p.Content, "/snippet/elysia/middleware/rate-limiter.html")
	second := strings.Index(p.Content, "/snippet/elysia/middleware/cors.html")
	require.Greater(t, first, -1)
	assert.Greater(t, second, first, "grid preserves input order")
}

func TestCanonicalEndsWithPath(t *testing.T) {
	env := testEnv()
	generators := []func(*Env) []Page{
		Frameworks, Categories, Snippets, UseCases, Compare, Guides, Tags, Search, Patterns, Home,
	}
	for _, gen := range generators {
		for _, p := range gen(env) {
			assert.Equal(t, origin+p.Path, p.Meta.Canonical, "page %s", p.Path)
		}
	}
}

func TestSnippetPageSourceAndPlaceholder(t *testing.T) {
	env := testEnv()
	all := Snippets(env)

	withSource := findPage(t, all, "/snippet/elysia/middleware/cors.html")
	assert.Contains(t, withSource.Content, "new Elysia().use(cors())")

	withoutSource := findPage(t, all, "/snippet/elysia/middleware/rate-limiter.html")
	assert.Contains(t, withoutSource.Content, sourcePlaceholder,
		"missing source degrades to a placeholder comment")
}

func TestSnippetPageStructuredData(t *testing.T) {
	env := testEnv()
	p := findPage(t, Snippets(env), "/snippet/elysia/middleware/cors.html")
	assert.Contains(t, p.Content, `"SoftwareSourceCode"`)
	assert.Contains(t, p.Content, `"BreadcrumbList"`)
	assert.Contains(t, p.Content, `"WebSite"`, "every page embeds the site-wide WebSite object")
}

func TestFrameworkPages(t *testing.T) {
	env := testEnv()
	all := Frameworks(env)
	require.Len(t, all, 3)

	p := findPage(t, all, "/framework/elysia.html")
	assert.Contains(t, p.Content, `"SoftwareApplication"`)
	assert.Contains(t, p.Content, `"reviewCount":2`)
	assert.Contains(t, p.Content, "/framework/elysia/middleware.html")
}

func TestSearchPagesForVocabularyQueries(t *testing.T) {
	env := testEnv()
	env.Vocab.Queries = []string{"jwt auth", "zzz-no-match-zzz", ""}

	all := Search(env)
	require.Len(t, all, 1, "queries with no matches or empty slug produce no page")

	p := all[0]
	assert.Equal(t, "/search/jwt-auth.html", p.Path)
	assert.Contains(t, p.Content, "/snippet/express/middleware/cors.html")
}

func TestUseCasePagesSkipEmpty(t *testing.T) {
	env := testEnv()
	env.Vocab.UseCases = []vocab.UseCase{
		{ID: "api-security", Title: "API Security", Keywords: []string{"cors"}},
		{ID: "nothing", Title: "Nothing", Keywords: []string{"zzz-absent"}},
	}

	all := UseCases(env)
	var paths []string
	for _, p := range all {
		paths = append(paths, p.Path)
	}
	assert.Contains(t, paths, "/use-case/elysia/api-security.html")
	for _, p := range paths {
		assert.NotContains(t, p, "/nothing", "unmatched use cases produce no page")
	}
}

func TestTagPagesIncludeGeneralBucket(t *testing.T) {
	env := testEnv()
	env.Vocab.Tags = []vocab.Tag{{ID: "security", Label: "Security", Keywords: []string{"cors"}}}

	all := Tags(env)
	var paths []string
	for _, p := range all {
		paths = append(paths, p.Path)
	}
	assert.Contains(t, paths, "/tag/elysia/security.html")
	// The logger snippet matches no tag and lands in general.
	assert.Contains(t, paths, "/tag/express/general.html")
}

func TestGuidePaths(t *testing.T) {
	env := testEnv()
	all := Guides(env)
	require.NotEmpty(t, all)

	p := findPage(t, all, "/guide/elysia-getting-started.html")
	assert.Contains(t, p.Content, "In this guide", "outline rendered without an article")
}

func TestGuideUsesArticleWhenPresent(t *testing.T) {
	env := testEnv()
	env.Guides["elysia/getting-started"] = content.GuideArticle{
		Title: "Custom", Framework: "elysia", Topic: "getting-started",
		Body: "## Custom article\n\nHand-written body.",
	}

	p := findPage(t, Guides(env), "/guide/elysia-getting-started.html")
	assert.Contains(t, p.Content, "Hand-written body.")
	assert.NotContains(t, p.Content, "In this guide")
}

func TestHomePage(t *testing.T) {
	env := testEnv()
	all := Home(env)
	require.Len(t, all, 1)
	assert.Equal(t, "/index.html", all[0].Path)
	assert.Contains(t, all[0].Content, "5 snippets across 3 frameworks")
}
