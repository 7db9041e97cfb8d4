package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accompanyhq/htmlui/internal/config"
	"github.com/accompanyhq/htmlui/internal/logger"
	"github.com/accompanyhq/htmlui/internal/theme"
)

func newThemeCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Compile theme token declarations into the custom-property stylesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(root.configPath)
			if err != nil {
				return err
			}

			store, err := theme.Load(cfg.Theme.Path)
			if err != nil {
				return err
			}

			var css strings.Builder
			if err := store.WriteCSS(&css); err != nil {
				return err
			}

			if cfg.Theme.Output == "" {
				_, err := cmd.OutOrStdout().Write([]byte(css.String()))
				return err
			}

			if err := os.MkdirAll(filepath.Dir(cfg.Theme.Output), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfg.Theme.Output, []byte(css.String()), 0o644); err != nil {
				return err
			}

			commandLogger(log, root).WithFields(map[string]any{
				"tokens": len(store.Names()),
				"output": cfg.Theme.Output,
			}).Info("theme stylesheet written")

			return nil
		},
	}

	return cmd
}
