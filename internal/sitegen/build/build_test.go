package build

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipforge/snipforge/internal/sitegen/config"
	"github.com/snipforge/snipforge/internal/sitegen/output"
)

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// fixtureConfig lays out a two-framework content tree under a temp dir and
// returns a config pointing at it.
func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")

	writeJSON(t, filepath.Join(contentDir, "elysia", "index.json"),
		map[string][]string{"categories": {"routing.json"}})
	writeJSON(t, filepath.Join(contentDir, "elysia", "routing.json"), map[string]interface{}{
		"id":    "routing",
		"title": "Routing",
		"snippets": []map[string]interface{}{
			{
				"id":          "basic-router",
				"name":        "basic-router",
				"displayName": "Basic Router",
				"description": "A minimal HTTP router with typed params.",
				"purpose":     "Route requests to handlers.",
				"features":    []string{"typed params", "method chaining"},
			},
			{
				"id":          "jwt-middleware",
				"name":        "jwt-middleware",
				"displayName": "JWT Middleware",
				"description": "JWT auth middleware validating bearer tokens.",
				"purpose":     "Protect routes with jwt auth.",
			},
		},
	})
	writeJSON(t, filepath.Join(contentDir, "elysia", "sources.json"),
		map[string]string{"basic-router": "new Elysia().get('/', () => 'ok')"})

	writeJSON(t, filepath.Join(contentDir, "express", "index.json"),
		map[string][]string{"categories": {"routing.json"}})
	writeJSON(t, filepath.Join(contentDir, "express", "routing.json"), map[string]interface{}{
		"id":    "routing",
		"title": "Routing",
		"snippets": []map[string]interface{}{
			{
				"id":          "basic-router",
				"name":        "basic-router",
				"displayName": "Basic Router",
				"description": "A minimal Express router.",
				"purpose":     "Route requests to handlers.",
			},
		},
	})

	staticDir := filepath.Join(root, "static")
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "assets", "site.css"), []byte("body{}"), 0644))

	return &config.Config{
		Site: config.SiteConfig{
			Name:        "SnipForge",
			Origin:      "https://snipforge.test",
			Description: "Code snippets for backend frameworks.",
		},
		Paths: config.PathsConfig{
			Content: contentDir,
			Vocab:   filepath.Join(root, "vocab"),
			Output:  filepath.Join(root, "dist"),
			Static:  staticDir,
		},
		Frameworks: []config.FrameworkConfig{
			{ID: "elysia", Name: "Elysia", Description: "TypeScript framework for Bun."},
			{ID: "express", Name: "Express", Description: "Minimal Node.js framework."},
		},
		Compare: config.CompareConfig{Pairs: [][2]string{{"elysia", "express"}}},
		Robots:  config.RobotsConfig{Disallow: []string{"/assets/", "/build-stats.json"}},
		Sitemap: config.SitemapConfig{MaxURLsPerFile: 50000, ChangeFreq: "weekly"},
		LlmsTxt: config.LlmsTxtConfig{Enabled: true, Tagline: "Snippets for backends."},
		Search:  config.SearchConfig{IndexEnabled: true},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildEndToEnd(t *testing.T) {
	cfg := fixtureConfig(t)
	b := NewBuilder(cfg, quietLogger())

	stats, err := b.Build()
	require.NoError(t, err)
	require.Greater(t, stats.TotalPages, 0)

	outDir := cfg.Paths.Output

	// Every generated page appears exactly once in the sitemap.
	sitemap, err := os.ReadFile(filepath.Join(outDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Equal(t, stats.TotalPages, strings.Count(string(sitemap), "<url>"))

	seen := make(map[string]bool)
	for _, line := range strings.Split(string(sitemap), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "<loc>") {
			continue
		}
		assert.False(t, seen[line], "duplicate sitemap loc %s", line)
		seen[line] = true
	}
	assert.Contains(t, string(sitemap), "<loc>https://snipforge.test/</loc>")
	assert.Contains(t, string(sitemap), "<priority>1.0</priority>")

	robots, err := os.ReadFile(filepath.Join(outDir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Disallow: /assets/")
	assert.Contains(t, string(robots), "Sitemap: https://snipforge.test/sitemap.xml")

	statsData, err := os.ReadFile(filepath.Join(outDir, "build-stats.json"))
	require.NoError(t, err)
	var onDisk output.BuildStats
	require.NoError(t, json.Unmarshal(statsData, &onDisk))
	assert.Equal(t, stats.TotalPages, onDisk.TotalPages)
	assert.Equal(t, 3, onDisk.PagesByType["snippet"])
	assert.Equal(t, 2, onDisk.PagesByType["framework"])
	assert.Equal(t, 1, onDisk.PagesByType["compare"])
	assert.Equal(t, 1, onDisk.PagesByType["home"])

	// Pages land at their logical paths under the output dir.
	home, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "<!DOCTYPE html>")

	_, err = os.Stat(filepath.Join(outDir, "snippet", "elysia", "routing", "basic-router.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "compare", "elysia-vs-express.html"))
	assert.NoError(t, err)

	// Static assets are copied alongside generated pages.
	_, err = os.Stat(filepath.Join(outDir, "assets", "site.css"))
	assert.NoError(t, err)
}

func TestBuildLlmsTxtAndSearchIndex(t *testing.T) {
	cfg := fixtureConfig(t)
	_, err := NewBuilder(cfg, quietLogger()).Build()
	require.NoError(t, err)

	llms, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "llms.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(llms), "# SnipForge"))
	assert.Contains(t, string(llms), "> Snippets for backends.")
	assert.Contains(t, string(llms), "## Snippets")

	idxData, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "search-index.json"))
	require.NoError(t, err)
	var idx []output.SearchIndexEntry
	require.NoError(t, json.Unmarshal(idxData, &idx))
	require.Len(t, idx, 3, "one index entry per snippet page")
	for _, e := range idx {
		assert.True(t, strings.HasPrefix(e.P, "/snippet/"))
		assert.NotEmpty(t, e.F)
		assert.Equal(t, "routing", e.C)
	}
}

func TestBuildDisabledArtifacts(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.LlmsTxt.Enabled = false
	cfg.Search.IndexEnabled = false

	_, err := NewBuilder(cfg, quietLogger()).Build()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.Paths.Output, "llms.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.Paths.Output, "search-index.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuildEmptyContentStillEmitsCorePages(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.Paths.Content = t.TempDir()

	stats, err := NewBuilder(cfg, quietLogger()).Build()
	require.NoError(t, err)

	// Framework hubs and the homepage never depend on catalog content.
	assert.Equal(t, 2, stats.PagesByType["framework"])
	assert.Equal(t, 1, stats.PagesByType["home"])
	assert.Zero(t, stats.PagesByType["snippet"])
}
