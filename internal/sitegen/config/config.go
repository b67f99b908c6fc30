package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level snipforge configuration.
type Config struct {
	Site       SiteConfig        `mapstructure:"site"`
	Paths      PathsConfig       `mapstructure:"paths"`
	Frameworks []FrameworkConfig `mapstructure:"frameworks"`
	Compare    CompareConfig     `mapstructure:"compare"`
	Robots     RobotsConfig      `mapstructure:"robots"`
	Sitemap    SitemapConfig     `mapstructure:"sitemap"`
	LlmsTxt    LlmsTxtConfig     `mapstructure:"llms_txt"`
	Search     SearchConfig      `mapstructure:"search"`

	// ConfigDir is the directory containing the config file (set at load time).
	ConfigDir string `mapstructure:"-"`
}

type SiteConfig struct {
	Name        string `mapstructure:"name"`
	Origin      string `mapstructure:"origin"`
	Description string `mapstructure:"description"`
	Language    string `mapstructure:"language"`
}

type PathsConfig struct {
	Content string `mapstructure:"content"`
	Vocab   string `mapstructure:"vocab"`
	Output  string `mapstructure:"output"`
	Static  string `mapstructure:"static"`
}

// FrameworkConfig is one entry of the static framework catalog.
type FrameworkConfig struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// CompareConfig holds the hand-curated framework pairs for comparison pages.
type CompareConfig struct {
	Pairs [][2]string `mapstructure:"pairs"`
}

type RobotsConfig struct {
	Disallow []string `mapstructure:"disallow"`
}

type SitemapConfig struct {
	MaxURLsPerFile int    `mapstructure:"max_urls_per_file"`
	ChangeFreq     string `mapstructure:"change_freq"`
}

type LlmsTxtConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Tagline string `mapstructure:"tagline"`
}

type SearchConfig struct {
	IndexEnabled bool `mapstructure:"index_enabled"`
}

// Load reads the config file (YAML) through viper, applies defaults and
// environment overrides (SNIPFORGE_*), validates, and resolves relative
// paths against the config directory.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("site.name", "SnipForge")
	v.SetDefault("site.origin", "https://snipforge.dev")
	v.SetDefault("site.language", "en")
	v.SetDefault("paths.content", "content")
	v.SetDefault("paths.vocab", "vocab")
	v.SetDefault("paths.output", "dist")
	v.SetDefault("sitemap.max_urls_per_file", 50000)
	v.SetDefault("sitemap.change_freq", "weekly")
	v.SetDefault("llms_txt.enabled", true)
	v.SetDefault("search.index_enabled", true)
	v.SetDefault("robots.disallow", []string{"/assets/", "/build-stats.json"})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("snipforge")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SNIPFORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if cfgFile != "" {
			return nil, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		// No config file is fine: defaults plus environment cover a
		// minimal build.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		cfg.ConfigDir = filepath.Dir(used)
	} else {
		cfg.ConfigDir = "."
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	resolvePaths(&cfg)

	return &cfg, nil
}

// DefaultFrameworks is the built-in framework catalog, used when the config
// does not enumerate one. The catalog is static configuration, not derived
// from the content tree.
func DefaultFrameworks() []FrameworkConfig {
	return []FrameworkConfig{
		{ID: "elysia", Name: "Elysia", Description: "Ergonomic TypeScript framework for Bun with end-to-end type safety."},
		{ID: "hono", Name: "Hono", Description: "Small, fast web framework built on Web Standards, runs on any JavaScript runtime."},
		{ID: "express", Name: "Express", Description: "Minimal and flexible Node.js web application framework."},
		{ID: "fastify", Name: "Fastify", Description: "Fast and low overhead web framework for Node.js."},
		{ID: "koa", Name: "Koa", Description: "Expressive middleware framework for Node.js by the Express team."},
	}
}

// DefaultComparePairs is the hand-curated comparison set used when the
// config does not specify pairs.
func DefaultComparePairs() [][2]string {
	return [][2]string{
		{"express", "hono"},
		{"express", "fastify"},
		{"elysia", "hono"},
		{"fastify", "koa"},
		{"express", "koa"},
		{"elysia", "express"},
	}
}

func applyDefaults(cfg *Config) {
	if len(cfg.Frameworks) == 0 {
		cfg.Frameworks = DefaultFrameworks()
	}
	if len(cfg.Compare.Pairs) == 0 {
		cfg.Compare.Pairs = DefaultComparePairs()
	}
	if len(cfg.Robots.Disallow) == 0 {
		cfg.Robots.Disallow = []string{"/assets/", "/build-stats.json"}
	}
	if cfg.Sitemap.ChangeFreq == "" {
		cfg.Sitemap.ChangeFreq = "weekly"
	}
	if cfg.Sitemap.MaxURLsPerFile == 0 {
		cfg.Sitemap.MaxURLsPerFile = 50000
	}
}

func validate(cfg *Config) error {
	if cfg.Site.Name == "" {
		return fmt.Errorf("site.name is required")
	}
	if cfg.Site.Origin == "" {
		return fmt.Errorf("site.origin is required")
	}
	if strings.HasSuffix(cfg.Site.Origin, "/") {
		cfg.Site.Origin = strings.TrimRight(cfg.Site.Origin, "/")
	}
	if cfg.Paths.Content == "" {
		return fmt.Errorf("paths.content is required")
	}
	seen := make(map[string]bool)
	for _, fw := range cfg.Frameworks {
		if fw.ID == "" {
			return fmt.Errorf("framework with empty id in catalog")
		}
		if seen[fw.ID] {
			return fmt.Errorf("duplicate framework id %q in catalog", fw.ID)
		}
		seen[fw.ID] = true
	}
	return nil
}

func resolvePaths(cfg *Config) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(cfg.ConfigDir, p)
	}

	cfg.Paths.Content = resolve(cfg.Paths.Content)
	cfg.Paths.Vocab = resolve(cfg.Paths.Vocab)
	cfg.Paths.Output = resolve(cfg.Paths.Output)
	cfg.Paths.Static = resolve(cfg.Paths.Static)
}
