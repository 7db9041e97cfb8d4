package theme

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

// Mode identifies a display mode the theme is rendered in.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes returns every display mode a store must cover.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// Valid reports whether the mode is one of the supported display modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark:
		return true
	default:
		return false
	}
}

// Store is the process-wide theme token table. It is constructed once at
// startup and read concurrently by every render call; nothing mutates it
// after New returns.
type Store struct {
	tokens map[Mode]map[string]string
	names  []string
}

// New builds a Store from per-mode token declarations. Every token must be
// declared in every supported mode, otherwise styling would be undefined
// in the missing mode and construction fails.
func New(decls map[Mode]map[string]string) (*Store, error) {
	nameSet := make(map[string]struct{})
	for _, mode := range Modes() {
		for name := range decls[mode] {
			nameSet[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	tokens := make(map[Mode]map[string]string, len(Modes()))
	for _, mode := range Modes() {
		declared := decls[mode]
		values := make(map[string]string, len(names))
		for _, name := range names {
			value, ok := declared[name]
			if !ok {
				return nil, htmluierrors.NewMissingTokenError(name, string(mode))
			}
			values[name] = value
		}
		tokens[mode] = values
	}

	return &Store{tokens: tokens, names: names}, nil
}

// Load reads per-mode token declarations from a YAML file and builds a
// Store from them.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, htmluierrors.NewParseError(path, 0, err)
	}

	var doc struct {
		Modes map[Mode]map[string]string `yaml:"modes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, htmluierrors.NewParseError(path, 0, err)
	}
	if len(doc.Modes) == 0 {
		return nil, htmluierrors.NewValidationError("modes", "no display modes declared", nil)
	}
	for mode := range doc.Modes {
		if !mode.Valid() {
			return nil, htmluierrors.NewValidationError("modes", "unsupported display mode "+string(mode), nil)
		}
	}

	return New(doc.Modes)
}

// Lookup resolves a token to its CSS value for the given mode.
func (s *Store) Lookup(name string, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", htmluierrors.NewMissingTokenError(name, string(mode))
	}
	value, ok := s.tokens[mode][name]
	if !ok {
		return "", htmluierrors.NewMissingTokenError(name, string(mode))
	}
	return value, nil
}

// Names returns every token name, sorted.
func (s *Store) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Default returns the built-in token set the stock components reference.
func Default() *Store {
	store, err := New(map[Mode]map[string]string{
		ModeLight: {
			"color-primary":           "#2563eb",
			"color-primary-fg":        "#f8fafc",
			"color-primary-hover":     "#1d4ed8",
			"color-secondary":         "#e2e8f0",
			"color-secondary-fg":      "#0f172a",
			"color-secondary-hover":   "#cbd5e1",
			"color-destructive":       "#dc2626",
			"color-destructive-fg":    "#fef2f2",
			"color-destructive-hover": "#b91c1c",
			"color-fg":                "#0f172a",
			"color-bg":                "#ffffff",
			"color-border":            "#e2e8f0",
			"color-surface-hover":     "#f1f5f9",
			"color-ring":              "#93c5fd",
			"radius-sm":               "0.25rem",
			"radius-md":               "0.375rem",
			"radius-lg":               "0.5rem",
		},
		ModeDark: {
			"color-primary":           "#3b82f6",
			"color-primary-fg":        "#0b1120",
			"color-primary-hover":     "#60a5fa",
			"color-secondary":         "#1e293b",
			"color-secondary-fg":      "#f1f5f9",
			"color-secondary-hover":   "#334155",
			"color-destructive":       "#ef4444",
			"color-destructive-fg":    "#fef2f2",
			"color-destructive-hover": "#f87171",
			"color-fg":                "#f8fafc",
			"color-bg":                "#0f172a",
			"color-border":            "#1e293b",
			"color-surface-hover":     "#1e293b",
			"color-ring":              "#1e40af",
			"radius-sm":               "0.25rem",
			"radius-md":               "0.375rem",
			"radius-lg":               "0.5rem",
		},
	})
	if err != nil {
		// The built-in declarations cover every mode; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return store
}
