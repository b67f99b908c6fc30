package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store exposes a typed, read-only view over the JSON content tree:
//
//	<root>/<framework>/index.json     category file list
//	<root>/<framework>/<file>.json    one category document
//	<root>/<framework>/sources.json   snippet id -> source code
//
// Content-load failures are contained here: a malformed or missing
// category document is logged and skipped, never propagated.
type Store struct {
	root       string
	frameworks []Framework
	log        *slog.Logger
}

// NewStore creates a store over the given content root. The framework
// catalog is static configuration; when empty, a built-in set is used so
// Frameworks never returns an empty catalog.
func NewStore(root string, frameworks []Framework, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{root: root, frameworks: frameworks, log: log}
}

// Frameworks returns the fixed framework set. Never fails.
func (s *Store) Frameworks() []Framework {
	if len(s.frameworks) > 0 {
		return s.frameworks
	}
	return []Framework{
		{ID: "elysia", Name: "Elysia", Description: "Ergonomic TypeScript framework for Bun."},
		{ID: "hono", Name: "Hono", Description: "Small, fast web framework built on Web Standards."},
		{ID: "express", Name: "Express", Description: "Minimal and flexible Node.js web framework."},
		{ID: "fastify", Name: "Fastify", Description: "Fast and low overhead web framework for Node.js."},
		{ID: "koa", Name: "Koa", Description: "Expressive middleware framework for Node.js."},
	}
}

// LoadCategories loads and flattens all category documents of a framework.
// Aggregation is best-effort: any individual read or parse failure skips
// that category with a warning. Duplicate snippet names within the
// framework are deduplicated deterministically (first occurrence wins)
// because comparison and use-case matching key on the name.
func (s *Store) LoadCategories(frameworkID string) []Category {
	dir := filepath.Join(s.root, frameworkID)

	idx, err := s.loadIndex(dir)
	if err != nil {
		s.log.Warn("skipping framework content", "framework", frameworkID, "error", err)
		return nil
	}

	seen := make(map[string]bool)
	var categories []Category
	for _, file := range idx.Categories {
		cat, err := loadCategory(filepath.Join(dir, file))
		if err != nil {
			s.log.Warn("skipping category", "framework", frameworkID, "file", file, "error", err)
			continue
		}

		kept := cat.Snippets[:0]
		for _, sn := range cat.Snippets {
			if sn.Name != "" && seen[sn.Name] {
				s.log.Warn("duplicate snippet name, keeping first occurrence",
					"framework", frameworkID, "category", cat.ID, "name", sn.Name)
				continue
			}
			seen[sn.Name] = true
			kept = append(kept, sn)
		}
		cat.Snippets = kept
		categories = append(categories, cat)
	}
	return categories
}

// LoadSource returns the source code for a snippet, or "" when the source
// map or entry is unavailable. Never returns an error: rendering degrades
// to a placeholder.
func (s *Store) LoadSource(frameworkID, snippetID string) string {
	data, err := os.ReadFile(filepath.Join(s.root, frameworkID, "sources.json"))
	if err != nil {
		return ""
	}
	var sources map[string]string
	if err := json.Unmarshal(data, &sources); err != nil {
		s.log.Warn("unreadable source map", "framework", frameworkID, "error", err)
		return ""
	}
	return sources[snippetID]
}

func (s *Store) loadIndex(dir string) (*indexDoc, error) {
	data, err := os.ReadFile(filepath.Join(dir, "index.json"))
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var idx indexDoc
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return &idx, nil
}

func loadCategory(path string) (Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Category{}, fmt.Errorf("reading category: %w", err)
	}
	var doc categoryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Category{}, fmt.Errorf("parsing category: %w", err)
	}
	if doc.ID == "" {
		return Category{}, fmt.Errorf("category document %s has no id", filepath.Base(path))
	}

	cat := Category{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Snippets:    doc.Snippets,
	}
	for _, sub := range doc.Subcategories {
		cat.Snippets = append(cat.Snippets, sub.Snippets...)
	}
	if cat.Title == "" {
		cat.Title = cat.ID
	}
	return cat, nil
}
