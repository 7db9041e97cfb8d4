// Package safelist implements the build-time class discovery step. It
// enumerates every class the component renderers can emit and scans the
// template corpus for dynamically composed class shapes, producing the
// safelist the utility-CSS compiler needs to keep those classes out of
// dead-code elimination.
//
// Discovery runs once per build and has no interaction with the render
// path.
package safelist

import (
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"sort"

	"github.com/accompanyhq/htmlui/internal/logger"
	"github.com/accompanyhq/htmlui/internal/ui"
	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

// Pattern is a compiled class-name shape. The source expression is
// unanchored for scanning; the anchored form classifies whole class
// tokens.
type Pattern struct {
	Source   string
	scan     *regexp.Regexp
	anchored *regexp.Regexp
}

// CompilePatterns compiles class-name pattern sources.
func CompilePatterns(sources []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(sources))
	for i, source := range sources {
		scan, err := regexp.Compile(source)
		if err != nil {
			return nil, htmluierrors.NewValidationError(
				fmt.Sprintf("patterns[%d]", i), "invalid class pattern", err)
		}
		anchored, err := regexp.Compile("^(?:" + source + ")$")
		if err != nil {
			return nil, htmluierrors.NewValidationError(
				fmt.Sprintf("patterns[%d]", i), "invalid class pattern", err)
		}
		patterns = append(patterns, Pattern{Source: source, scan: scan, anchored: anchored})
	}
	return patterns, nil
}

// DefaultPatterns returns the class shapes the stock components compose
// dynamically: theme-token-bound backgrounds, text and border colors,
// hover-state overrides, the focus-ring override, and radius-token
// rounding.
func DefaultPatterns() []string {
	return []string{
		`bg-\[var\(--color-[a-z-]+\)\]`,
		`text-\[var\(--color-[a-z-]+\)\]`,
		`border-\[var\(--color-[a-z-]+\)\]`,
		`hover:(?:bg|text)-\[var\(--color-[a-z-]+\)\]`,
		`focus:ring-\[var\(--color-[a-z-]+\)\]`,
		`rounded-\[var\(--radius-(?:sm|md|lg)\)\]`,
	}
}

// Options configures a discovery pass.
type Options struct {
	// Source is the tree the content globs are evaluated against.
	Source fs.FS

	// Content selects the template/markup files to scan. Globs support
	// doublestar segments so nested module trees are reachable.
	Content []string

	// Patterns are the class-name shapes to look for in scanned files.
	Patterns []Pattern

	Log *logger.Logger
}

// Result is the outcome of a discovery pass.
type Result struct {
	// Classes is the sorted, deduplicated safelist: the exhaustive render
	// enumeration unioned with every pattern match from the scan.
	Classes []string

	// Scanned counts the files the content globs selected.
	Scanned int
}

// Discover runs the single-pass scan. The exhaustive enumeration of every
// (kind x size x variant) combination seeds the safelist, so the scan only
// adds classes composed outside the component tables.
func Discover(opts Options) (*Result, error) {
	seen := make(map[string]struct{})
	for _, class := range ui.EmittedClasses() {
		seen[class] = struct{}{}
	}

	scanned := 0
	if opts.Source != nil {
		files, err := expandGlobs(opts.Source, opts.Content)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			data, err := fs.ReadFile(opts.Source, file)
			if err != nil {
				return nil, htmluierrors.NewParseError(file, 0, err)
			}
			scanned++
			for _, pattern := range opts.Patterns {
				for _, match := range pattern.scan.FindAllString(string(data), -1) {
					seen[match] = struct{}{}
				}
			}
		}
	}

	classes := make([]string, 0, len(seen))
	for class := range seen {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	if opts.Log != nil {
		opts.Log.WithFields(map[string]any{
			"files":   scanned,
			"classes": len(classes),
		}).Debug("class discovery complete")
	}

	return &Result{Classes: classes, Scanned: scanned}, nil
}

// Write emits the safelist, one class per line.
func (r *Result) Write(w io.Writer) error {
	for _, class := range r.Classes {
		if _, err := fmt.Fprintln(w, class); err != nil {
			return err
		}
	}
	return nil
}
