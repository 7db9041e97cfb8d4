package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accompanyhq/htmlui/internal/config"
	"github.com/accompanyhq/htmlui/internal/logger"
	"github.com/accompanyhq/htmlui/internal/safelist"
)

type safelistOptions struct {
	check bool
}

func newSafelistCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := safelistOptions{}

	cmd := &cobra.Command{
		Use:   "safelist",
		Short: "Discover dynamically composed classes and write the CSS compiler safelist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSafelist(root, opts, commandLogger(log, root))
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail when patterns and emitted classes disagree")

	return cmd
}

func runSafelist(root *rootFlags, opts safelistOptions, log *logger.Logger) error {
	cfg, err := config.ParseConfig(root.configPath)
	if err != nil {
		return err
	}

	sources := cfg.Safelist.Patterns
	if len(sources) == 0 {
		sources = safelist.DefaultPatterns()
	}
	patterns, err := safelist.CompilePatterns(sources)
	if err != nil {
		return err
	}

	report := safelist.Verify(patterns)
	for _, orphan := range report.OrphanedPatterns {
		log.WithFields(map[string]any{"pattern": orphan}).Warn("pattern matches no emitted class")
	}
	for _, class := range report.UnmatchedClasses {
		log.WithFields(map[string]any{"class": class}).Warn("emitted class not covered by any pattern")
	}
	if opts.check && !report.Clean() {
		return fmt.Errorf("safelist verification failed: %d orphaned patterns, %d unmatched classes",
			len(report.OrphanedPatterns), len(report.UnmatchedClasses))
	}

	result, err := safelist.Discover(safelist.Options{
		Source:   os.DirFS("."),
		Content:  cfg.Safelist.Content,
		Patterns: patterns,
		Log:      log,
	})
	if err != nil {
		return err
	}

	var out strings.Builder
	if err := result.Write(&out); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Safelist.Output), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Safelist.Output, []byte(out.String()), 0o644); err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"classes": len(result.Classes),
		"files":   result.Scanned,
		"output":  cfg.Safelist.Output,
	}).Info("safelist written")

	return nil
}
