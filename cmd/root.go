package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/snipforge/snipforge/internal/sitegen/config"
)

var (
	cfgFile string
	appCfg  *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "snipforge",
	Short: "snipforge generates a static snippet-catalog website",
	Long: `snipforge turns a JSON catalog of backend code snippets into a
static SEO-optimized website: framework, category, snippet, use-case,
comparison, guide, tag, search, and pattern pages plus sitemap, robots,
and build statistics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./snipforge.yaml)")
}
