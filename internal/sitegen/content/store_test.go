package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func TestFrameworksFallback(t *testing.T) {
	s := NewStore(t.TempDir(), nil, nil)
	fws := s.Frameworks()
	require.NotEmpty(t, fws, "framework catalog must never be empty")

	configured := NewStore(t.TempDir(), []Framework{{ID: "express", Name: "Express"}}, nil)
	assert.Len(t, configured.Frameworks(), 1)
}

func TestLoadCategoriesFlattensSubcategories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "elysia", "index.json"), `{"categories":["middleware.json"]}`)
	writeFile(t, filepath.Join(root, "elysia", "middleware.json"), `{
		"id": "middleware",
		"title": "Middleware",
		"snippets": [{"id":"cors","name":"elysia-cors","displayName":"CORS"}],
		"subcategories": [
			{"name":"limits","snippets":[{"id":"rate-limiter","name":"elysia-rate-limiter","displayName":"Rate Limiter"}]}
		]
	}`)

	s := NewStore(root, nil, nil)
	cats := s.LoadCategories("elysia")
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Snippets, 2)
	assert.Equal(t, "elysia-cors", cats[0].Snippets[0].Name)
	assert.Equal(t, "elysia-rate-limiter", cats[0].Snippets[1].Name)
}

func TestLoadCategoriesSkipsMalformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hono", "index.json"), `{"categories":["good.json","bad.json","missing.json"]}`)
	writeFile(t, filepath.Join(root, "hono", "good.json"), `{"id":"auth","title":"Auth","snippets":[{"id":"jwt","name":"hono-jwt"}]}`)
	writeFile(t, filepath.Join(root, "hono", "bad.json"), `{not json`)

	s := NewStore(root, nil, nil)
	cats := s.LoadCategories("hono")
	require.Len(t, cats, 1, "malformed and missing categories are skipped, not fatal")
	assert.Equal(t, "auth", cats[0].ID)
}

func TestLoadCategoriesMissingFramework(t *testing.T) {
	s := NewStore(t.TempDir(), nil, nil)
	assert.Empty(t, s.LoadCategories("nonexistent"))
}

func TestLoadCategoriesDedupesNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "express", "index.json"), `{"categories":["a.json","b.json"]}`)
	writeFile(t, filepath.Join(root, "express", "a.json"), `{"id":"a","snippets":[{"id":"cors1","name":"cors","displayName":"First"}]}`)
	writeFile(t, filepath.Join(root, "express", "b.json"), `{"id":"b","snippets":[{"id":"cors2","name":"cors","displayName":"Second"}]}`)

	s := NewStore(root, nil, nil)
	cats := s.LoadCategories("express")
	require.Len(t, cats, 2)
	assert.Len(t, cats[0].Snippets, 1, "first occurrence kept")
	assert.Empty(t, cats[1].Snippets, "duplicate name dropped")
}

func TestLoadSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "express", "sources.json"), `{"cors":"app.use(cors())"}`)

	s := NewStore(root, nil, nil)
	assert.Equal(t, "app.use(cors())", s.LoadSource("express", "cors"))
	assert.Equal(t, "", s.LoadSource("express", "unknown"), "missing entry degrades to empty")
	assert.Equal(t, "", s.LoadSource("fastify", "cors"), "missing map degrades to empty")
}

func TestLoadGuideArticles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "guides", "express-auth.md"),
		"---\ntitle: Express Auth\nframework: express\ntopic: authentication\n---\n\nUse sessions.\n")
	writeFile(t, filepath.Join(root, "guides", "orphan.md"), "---\ntitle: No home\n---\nbody\n")

	s := NewStore(root, nil, nil)
	articles := s.LoadGuideArticles()
	require.Len(t, articles, 1, "articles without framework/topic are skipped")
	a := articles["express/authentication"]
	assert.Equal(t, "Express Auth", a.Title)
	assert.Contains(t, a.Body, "Use sessions.")
}
