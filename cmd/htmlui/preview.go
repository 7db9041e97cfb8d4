package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/accompanyhq/htmlui/internal/config"
	"github.com/accompanyhq/htmlui/internal/i18n"
	"github.com/accompanyhq/htmlui/internal/icons"
	"github.com/accompanyhq/htmlui/internal/tui"
	"github.com/accompanyhq/htmlui/internal/ui"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Walk the component variant grid in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal")
			}

			translator := i18n.Noop()
			if cfg, err := config.ParseConfig(root.configPath); err == nil && cfg.Locales.Dir != "" {
				locale := cfg.Locales.Default
				if locale == "" {
					locale = "en"
				}
				translator = i18n.ForLocale(cfg.Locales.Dir, locale)
			}

			renderer := ui.NewRenderer(icons.NewRegistry(os.DirFS(".")), translator)
			program := tea.NewProgram(tui.NewModel(renderer), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	return cmd
}
