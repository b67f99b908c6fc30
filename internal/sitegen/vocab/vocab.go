// Package vocab holds the fixed classification vocabularies: tags, use
// cases, design patterns, search queries, and tutorial topics. Vocabularies
// are immutable data passed explicitly to the matching and generation
// code, not ambient globals; they may be overridden per-file from a YAML
// directory.
package vocab

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tag is a classification bucket matched by keyword list (OR semantics).
type Tag struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// UseCase is a developer problem a snippet may solve.
type UseCase struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// Pattern is a named software design pattern.
type Pattern struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// Topic is a tutorial subject expanded per framework into guide pages.
type Topic struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Sections    []string `yaml:"sections"`
}

// Set is the complete vocabulary supplied to the generators.
type Set struct {
	Tags     []Tag     `yaml:"tags"`
	UseCases []UseCase `yaml:"use_cases"`
	Patterns []Pattern `yaml:"patterns"`
	Queries  []string  `yaml:"queries"`
	Topics   []Topic   `yaml:"topics"`
}

// Load reads vocabulary files from dir, one file per list (tags.yaml,
// use_cases.yaml, patterns.yaml, queries.yaml, topics.yaml). Any file that
// is absent keeps the built-in default for that list; a present but
// malformed file is an error.
func Load(dir string) (Set, error) {
	set := Default()
	if dir == "" {
		return set, nil
	}

	if err := loadFile(filepath.Join(dir, "tags.yaml"), &set.Tags); err != nil {
		return set, err
	}
	if err := loadFile(filepath.Join(dir, "use_cases.yaml"), &set.UseCases); err != nil {
		return set, err
	}
	if err := loadFile(filepath.Join(dir, "patterns.yaml"), &set.Patterns); err != nil {
		return set, err
	}
	if err := loadFile(filepath.Join(dir, "queries.yaml"), &set.Queries); err != nil {
		return set, err
	}
	if err := loadFile(filepath.Join(dir, "topics.yaml"), &set.Topics); err != nil {
		return set, err
	}
	return set, nil
}

func loadFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	return nil
}
