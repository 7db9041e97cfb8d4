package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accompanyhq/htmlui/internal/icons"
	"github.com/accompanyhq/htmlui/internal/ui"
)

func newPreview() Model {
	return NewModel(ui.NewRenderer(icons.NewRegistry(nil), nil))
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestNavigationWrapsVariants(t *testing.T) {
	t.Parallel()

	m := newPreview()
	variants := ui.VariantsFor(ui.KindButton)

	next, _ := m.Update(keyMsg("l"))
	m = next.(Model)
	assert.Equal(t, variants[1], m.variant())

	next, _ = m.Update(keyMsg("h"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("h"))
	m = next.(Model)
	assert.Equal(t, variants[len(variants)-1], m.variant(), "moving left from the first variant wraps")
}

func TestKindSwitchResetsIndices(t *testing.T) {
	t.Parallel()

	m := newPreview()
	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("l"))
	m = next.(Model)

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, ui.KindBadge, m.kind())
	assert.Equal(t, ui.SizeSM, m.size())
	assert.Equal(t, ui.VariantPrimary, m.variant())
}

func TestViewShowsClassesAndMarkup(t *testing.T) {
	t.Parallel()

	m := newPreview()
	out := m.View()

	assert.Contains(t, out, "htmlui component preview")
	assert.Contains(t, out, "inline-flex")
	assert.Contains(t, out, "<button")
}

func TestViewRendersBadgeKind(t *testing.T) {
	t.Parallel()

	m := newPreview()
	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "badge")
	assert.Contains(t, out, "<span")
}

func TestToggleStatesAffectMarkup(t *testing.T) {
	t.Parallel()

	m := newPreview()
	next, _ := m.Update(keyMsg("d"))
	m = next.(Model)

	markup, err := m.renderMarkup()
	require.NoError(t, err)
	assert.Contains(t, markup, "aria-disabled")

	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	markup, err = m.renderMarkup()
	require.NoError(t, err)
	assert.Contains(t, markup, "animate-spin")
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := newPreview()
	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)

	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
