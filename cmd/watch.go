package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/snipforge/snipforge/internal/sitegen/build"
	"github.com/snipforge/snipforge/internal/sitegen/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the site whenever content or vocabularies change",
	RunE: func(cmd *cobra.Command, args []string) error {
		builder := build.NewBuilder(appCfg, logger)
		if _, err := builder.Build(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dirs := []string{appCfg.Paths.Content, appCfg.Paths.Vocab}
		err := watch.Run(ctx, dirs, logger, func() error {
			_, err := builder.Build()
			return err
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
