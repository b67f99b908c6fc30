// Package build orchestrates the full site generation pipeline: load
// content and vocabularies, run the page generators, write every artifact,
// then derive sitemap, robots, llms.txt, search index, and build stats.
package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/snipforge/snipforge/internal/sitegen/config"
	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/output"
	"github.com/snipforge/snipforge/internal/sitegen/pages"
	"github.com/snipforge/snipforge/internal/sitegen/schema"
	"github.com/snipforge/snipforge/internal/sitegen/vocab"
)

// writeWorkers bounds the concurrent page writers. Path uniqueness is
// checked before any write, so concurrent writers never clobber each
// other.
const writeWorkers = 16

// Builder runs the complete build.
type Builder struct {
	cfg *config.Config
	log *slog.Logger
}

// NewBuilder creates a builder for the given configuration.
func NewBuilder(cfg *config.Config, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{cfg: cfg, log: log}
}

// Build runs the pipeline to completion. Content-load failures degrade
// individual pages; any write failure is fatal.
func (b *Builder) Build() (output.BuildStats, error) {
	start := time.Now()
	b.log.Info("building site", "site", b.cfg.Site.Name, "output", b.cfg.Paths.Output)

	env, err := b.loadEnv()
	if err != nil {
		return output.BuildStats{}, err
	}

	all, byType, err := b.generate(env)
	if err != nil {
		return output.BuildStats{}, err
	}
	b.log.Info("generated pages", "total", len(all))

	outDir := b.cfg.Paths.Output
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return output.BuildStats{}, fmt.Errorf("creating output dir: %w", err)
	}

	if err := b.writePages(outDir, all); err != nil {
		return output.BuildStats{}, err
	}

	if err := b.writeSitemap(outDir, all, start); err != nil {
		return output.BuildStats{}, err
	}

	robots := output.GenerateRobotsTxt(b.cfg.Site.Origin, b.cfg.Robots.Disallow)
	if err := os.WriteFile(filepath.Join(outDir, "robots.txt"), []byte(robots), 0644); err != nil {
		return output.BuildStats{}, fmt.Errorf("writing robots.txt: %w", err)
	}

	if b.cfg.LlmsTxt.Enabled {
		if err := b.writeLlmsTxt(outDir, all); err != nil {
			return output.BuildStats{}, err
		}
	}

	if b.cfg.Search.IndexEnabled {
		if err := b.writeSearchIndex(outDir, all); err != nil {
			return output.BuildStats{}, err
		}
	}

	stats := output.NewBuildStats(byType, start, time.Since(start))
	data, err := stats.Marshal()
	if err != nil {
		return stats, fmt.Errorf("marshaling build stats: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "build-stats.json"), data, 0644); err != nil {
		return stats, fmt.Errorf("writing build-stats.json: %w", err)
	}

	if b.cfg.Paths.Static != "" {
		if err := copyDir(b.cfg.Paths.Static, outDir); err != nil {
			b.log.Warn("copying static assets", "error", err)
		}
	}

	b.log.Info("build complete",
		"pages", stats.TotalPages,
		"duration", time.Since(start).Round(time.Millisecond))
	return stats, nil
}

// loadEnv loads vocabularies, the content catalog, and guide articles into
// the shared generator environment.
func (b *Builder) loadEnv() (*pages.Env, error) {
	vocabSet, err := vocab.Load(b.cfg.Paths.Vocab)
	if err != nil {
		return nil, fmt.Errorf("loading vocabularies: %w", err)
	}

	frameworks := make([]content.Framework, 0, len(b.cfg.Frameworks))
	for _, fc := range b.cfg.Frameworks {
		frameworks = append(frameworks, content.Framework{ID: fc.ID, Name: fc.Name, Description: fc.Description})
	}

	store := content.NewStore(b.cfg.Paths.Content, frameworks, b.log)

	categories := make(map[string][]content.Category)
	for _, fw := range store.Frameworks() {
		cats := store.LoadCategories(fw.ID)
		categories[fw.ID] = cats
		b.log.Info("loaded framework content", "framework", fw.ID, "categories", len(cats))
	}

	site := schema.Site{
		Name:        b.cfg.Site.Name,
		Origin:      b.cfg.Site.Origin,
		Description: b.cfg.Site.Description,
	}

	return &pages.Env{
		Site:         site,
		Frameworks:   store.Frameworks(),
		Categories:   categories,
		Sources:      store.LoadSource,
		Guides:       store.LoadGuideArticles(),
		Vocab:        vocabSet,
		ComparePairs: b.cfg.Compare.Pairs,
		Schema:       schema.NewGenerator(site),
		Log:          b.log,
	}, nil
}

// generate runs the generators in a fixed order and enforces build-wide
// path uniqueness.
func (b *Builder) generate(env *pages.Env) ([]pages.Page, map[string]int, error) {
	generators := []struct {
		name string
		run  func(*pages.Env) []pages.Page
	}{
		{"framework", pages.Frameworks},
		{"category", pages.Categories},
		{"snippet", pages.Snippets},
		{"use-case", pages.UseCases},
		{"compare", pages.Compare},
		{"guide", pages.Guides},
		{"tag", pages.Tags},
		{"search", pages.Search},
		{"pattern", pages.Patterns},
		{"home", pages.Home},
	}

	var all []pages.Page
	byType := make(map[string]int)
	seen := make(map[string]string)

	for _, g := range generators {
		emitted := g.run(env)
		for _, p := range emitted {
			if prev, dup := seen[p.Path]; dup {
				return nil, nil, fmt.Errorf("duplicate page path %s emitted by %s and %s", p.Path, prev, g.name)
			}
			seen[p.Path] = g.name
			byType[p.Type]++
		}
		all = append(all, emitted...)
		b.log.Info("generator done", "type", g.name, "pages", len(emitted))
	}
	return all, byType, nil
}

// writePages writes all page documents through a bounded worker pool.
// The first write error aborts the build.
func (b *Builder) writePages(outDir string, all []pages.Page) error {
	var wg sync.WaitGroup
	sem := make(chan struct{}, writeWorkers)

	var mu sync.Mutex
	var firstErr error

	for _, p := range all {
		wg.Add(1)
		sem <- struct{}{}
		go func(p pages.Page) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := writePage(outDir, p); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(p)
	}
	wg.Wait()
	return firstErr
}

func writePage(outDir string, p pages.Page) error {
	rel := strings.TrimPrefix(p.Path, "/")
	outPath := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", p.Path, err)
	}
	if err := os.WriteFile(outPath, []byte(p.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", p.Path, err)
	}
	return nil
}

func (b *Builder) writeSitemap(outDir string, all []pages.Page, buildTime time.Time) error {
	lastmod := buildTime.UTC().Format("2006-01-02")

	entries := make([]output.SitemapEntry, 0, len(all))
	for _, p := range all {
		priority := "0.8"
		if p.Path == "/index.html" {
			priority = "1.0"
		}
		entries = append(entries, output.NewSitemapEntry(
			b.cfg.Site.Origin, p.Path, lastmod, priority, b.cfg.Sitemap.ChangeFreq))
	}

	files := output.GenerateSitemapFiles(entries, b.cfg.Site.Origin, b.cfg.Sitemap.MaxURLsPerFile)
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(outDir, f.Filename), []byte(f.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Filename, err)
		}
	}
	b.log.Info("wrote sitemap", "urls", len(entries), "files", len(files))
	return nil
}

func (b *Builder) writeLlmsTxt(outDir string, all []pages.Page) error {
	var snippets []output.LlmsEntry
	sections := map[string][]output.LlmsEntry{}
	order := []string{"Use Cases", "Guides"}

	for _, p := range all {
		entry := output.LlmsEntry{
			Title:       p.Meta.Title,
			URL:         p.Meta.Canonical,
			Description: p.Meta.Description,
		}
		switch p.Type {
		case "snippet":
			snippets = append(snippets, entry)
		case "use-case":
			sections["Use Cases"] = append(sections["Use Cases"], entry)
		case "guide":
			sections["Guides"] = append(sections["Guides"], entry)
		}
	}

	doc := output.GenerateLlmsTxt(b.cfg.Site.Name, b.cfg.LlmsTxt.Tagline, snippets, sections, order)
	if err := os.WriteFile(filepath.Join(outDir, "llms.txt"), []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing llms.txt: %w", err)
	}
	return nil
}

func (b *Builder) writeSearchIndex(outDir string, all []pages.Page) error {
	var entries []output.SearchIndexEntry
	for _, p := range all {
		if p.Type != "snippet" {
			continue
		}
		// Path shape: /snippet/<framework>/<category>/<id>.html
		parts := strings.Split(strings.TrimPrefix(p.Path, "/"), "/")
		fw, cat := "", ""
		if len(parts) == 4 {
			fw, cat = parts[1], parts[2]
		}
		entries = append(entries, output.NewSearchIndexEntry(
			p.Meta.Title, p.Meta.Description, p.Path, fw, cat))
	}

	data, err := output.GenerateSearchIndex(entries)
	if err != nil {
		return fmt.Errorf("marshaling search index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "search-index.json"), data, 0644); err != nil {
		return fmt.Errorf("writing search-index.json: %w", err)
	}
	return nil
}

// copyDir copies files from src into dst recursively. A missing source is
// not an error.
func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, 0755); err != nil {
				return err
			}
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		data, err := os.ReadFile(srcPath)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dstPath, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
