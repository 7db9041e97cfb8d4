// Package i18n provides the translation lookup consumed by the component
// renderers. The renderers only depend on the Translator interface; catalog
// management belongs to the application.
package i18n

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

// Translator resolves a message key to a localized string.
type Translator interface {
	Translate(key string) string
}

type noop struct{}

func (noop) Translate(key string) string { return key }

// Noop returns the identity translator used as the default wiring and as
// the fallback when no catalog is available.
func Noop() Translator {
	return noop{}
}

// Catalog is a map-backed Translator loaded from a per-locale YAML file.
// Unknown keys fall back to the key itself.
type Catalog struct {
	locale   string
	messages map[string]string
}

// LoadCatalog reads <dir>/<locale>.yaml, a flat key→message mapping.
func LoadCatalog(dir, locale string) (*Catalog, error) {
	path := filepath.Join(dir, locale+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, htmluierrors.NewParseError(path, 0, err)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, htmluierrors.NewParseError(path, 0, err)
	}

	return &Catalog{locale: locale, messages: messages}, nil
}

// Locale returns the locale the catalog was loaded for.
func (c *Catalog) Locale() string {
	return c.locale
}

// Translate implements Translator.
func (c *Catalog) Translate(key string) string {
	if message, ok := c.messages[key]; ok {
		return message
	}
	return key
}

// ForLocale loads the catalog for a locale, falling back to the identity
// translator when the catalog is missing or unreadable.
func ForLocale(dir, locale string) Translator {
	catalog, err := LoadCatalog(dir, locale)
	if err != nil {
		return Noop()
	}
	return catalog
}
