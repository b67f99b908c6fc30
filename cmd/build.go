package cmd

import (
	"github.com/spf13/cobra"

	"github.com/snipforge/snipforge/internal/sitegen/build"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the full static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := build.NewBuilder(appCfg, logger).Build()
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
