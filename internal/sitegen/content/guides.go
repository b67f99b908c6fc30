package content

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// GuideArticle is an optional hand-written article merged into a tutorial
// guide page. Articles live under <root>/guides/*.md with YAML
// frontmatter naming the framework and topic they belong to.
type GuideArticle struct {
	Title     string `yaml:"title"`
	Framework string `yaml:"framework"`
	Topic     string `yaml:"topic"`
	Body      string `yaml:"-"` // markdown body
}

// LoadGuideArticles reads all guide articles, keyed by
// "<framework>/<topic>". Best-effort: unreadable or unparsable files are
// skipped with a warning, and a missing guides directory yields an empty
// map.
func (s *Store) LoadGuideArticles() map[string]GuideArticle {
	articles := make(map[string]GuideArticle)

	dir := filepath.Join(s.root, "guides")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return articles
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		article, err := parseGuideArticle(path)
		if err != nil {
			s.log.Warn("skipping guide article", "file", entry.Name(), "error", err)
			continue
		}
		if article.Framework == "" || article.Topic == "" {
			s.log.Warn("guide article missing framework or topic", "file", entry.Name())
			continue
		}
		articles[article.Framework+"/"+article.Topic] = article
	}
	return articles
}

func parseGuideArticle(path string) (GuideArticle, error) {
	f, err := os.Open(path)
	if err != nil {
		return GuideArticle{}, err
	}
	defer f.Close()

	var article GuideArticle
	body, err := frontmatter.Parse(f, &article)
	if err != nil {
		return GuideArticle{}, err
	}
	article.Body = string(body)
	return article, nil
}
