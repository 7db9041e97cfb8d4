package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

func TestNewRejectsPartialModeCoverage(t *testing.T) {
	t.Parallel()

	_, err := New(map[Mode]map[string]string{
		ModeLight: {"color-primary": "#2563eb", "color-fg": "#0f172a"},
		ModeDark:  {"color-primary": "#3b82f6"},
	})

	var missing *htmluierrors.MissingTokenError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "color-fg", missing.Token)
	assert.Equal(t, "dark", missing.Mode)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	store, err := New(map[Mode]map[string]string{
		ModeLight: {"color-primary": "#2563eb"},
		ModeDark:  {"color-primary": "#3b82f6"},
	})
	require.NoError(t, err)

	value, err := store.Lookup("color-primary", ModeDark)
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", value)

	_, err = store.Lookup("color-accent", ModeLight)
	var missing *htmluierrors.MissingTokenError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "color-accent", missing.Token)

	_, err = store.Lookup("color-primary", Mode("sepia"))
	require.ErrorAs(t, err, &missing)
}

func TestDefaultCoversEveryMode(t *testing.T) {
	t.Parallel()

	store := Default()
	require.NotEmpty(t, store.Names())

	for _, name := range store.Names() {
		for _, mode := range Modes() {
			value, err := store.Lookup(name, mode)
			require.NoError(t, err, "token %s mode %s", name, mode)
			assert.NotEmpty(t, value)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	doc := `modes:
  light:
    color-primary: "#2563eb"
    radius-md: 0.375rem
  dark:
    color-primary: "#3b82f6"
    radius-md: 0.375rem
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store, err := Load(path)
	require.NoError(t, err)

	value, err := store.Lookup("radius-md", ModeLight)
	require.NoError(t, err)
	assert.Equal(t, "0.375rem", value)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	doc := `modes:
  sepia:
    color-primary: "#aa9977"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	var validationErr *htmluierrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *htmluierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestWriteCSSIsDeterministic(t *testing.T) {
	t.Parallel()

	store := Default()

	var first, second strings.Builder
	require.NoError(t, store.WriteCSS(&first))
	require.NoError(t, store.WriteCSS(&second))
	assert.Equal(t, first.String(), second.String())

	css := first.String()
	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, `[data-theme="dark"] {`)
	for _, name := range store.Names() {
		assert.Equal(t, 2, strings.Count(css, "--"+name+":"), "token %s should appear once per mode", name)
	}
}

func TestVar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "var(--color-primary)", Var("color-primary"))
}
