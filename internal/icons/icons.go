// Package icons resolves icon references to inline SVG glyph markup.
//
// A reference is either a name, looked up in the built-in glyph set, or an
// explicit path into a caller-supplied filesystem. Explicit paths win over
// names. The composer never decides sizing; the caller passes the size
// classes to inject into the glyph's root tag.
package icons

import (
	"embed"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

//go:embed assets/*.svg
var builtin embed.FS

// Registry holds the resolvable glyph set. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	glyphs map[string]string
	source fs.FS
}

// NewRegistry builds a Registry over the built-in glyph set. source, when
// non-nil, backs explicit-path references.
func NewRegistry(source fs.FS) *Registry {
	glyphs := make(map[string]string)

	entries, err := builtin.ReadDir("assets")
	if err != nil {
		// The embedded tree is part of the binary; this cannot fail at
		// runtime short of a corrupted build.
		panic(err)
	}
	for _, entry := range entries {
		data, err := builtin.ReadFile(path.Join("assets", entry.Name()))
		if err != nil {
			panic(err)
		}
		name := strings.TrimSuffix(entry.Name(), ".svg")
		glyphs[name] = strings.TrimSpace(string(data))
	}

	return &Registry{glyphs: glyphs, source: source}
}

// Resolve turns an icon reference into glyph markup with the supplied size
// classes injected. An explicit path overrides the name. An unresolvable
// reference is a hard failure.
func (r *Registry) Resolve(name, iconPath, sizeClasses string) (template.HTML, error) {
	if iconPath != "" {
		if r.source == nil {
			return "", htmluierrors.NewIconNotFoundError(name, iconPath, nil)
		}
		data, err := fs.ReadFile(r.source, iconPath)
		if err != nil {
			return "", htmluierrors.NewIconNotFoundError(name, iconPath, err)
		}
		return injectClasses(strings.TrimSpace(string(data)), sizeClasses), nil
	}

	glyph, ok := r.glyphs[name]
	if !ok {
		return "", htmluierrors.NewIconNotFoundError(name, "", nil)
	}
	return injectClasses(glyph, sizeClasses), nil
}

// Has reports whether a name resolves in the built-in glyph set.
func (r *Registry) Has(name string) bool {
	_, ok := r.glyphs[name]
	return ok
}

// Names returns the built-in glyph names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.glyphs))
	for name := range r.glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const spinnerGlyph = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" aria-hidden="true"><circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4"></circle><path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 0 1 8-8v4a4 4 0 0 0-4 4H4z"></path></svg>`

// Spinner returns the loading-state glyph with the supplied size classes
// appended to its spin animation class.
func Spinner(sizeClasses string) template.HTML {
	classes := "animate-spin"
	if sizeClasses != "" {
		classes += " " + sizeClasses
	}
	return injectClasses(spinnerGlyph, classes)
}

// injectClasses adds a class attribute to the root svg tag, mirroring how
// the glyph sources ship without any sizing of their own.
func injectClasses(svg, classes string) template.HTML {
	if classes == "" {
		return template.HTML(svg)
	}
	escaped := template.HTMLEscapeString(classes)
	return template.HTML(strings.Replace(svg, "<svg", `<svg class="`+escaped+`"`, 1))
}
