package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/accompanyhq/htmlui/internal/ui"
)

// Update handles preview navigation: sizes vertically, variants
// horizontally, kind/state toggles on letter keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.sizeIdx = wrap(m.sizeIdx-1, len(ui.SizesFor(m.kind())))
		case "down", "j":
			m.sizeIdx = wrap(m.sizeIdx+1, len(ui.SizesFor(m.kind())))
		case "left", "h":
			m.variantIdx = wrap(m.variantIdx-1, len(ui.VariantsFor(m.kind())))
		case "right", "l":
			m.variantIdx = wrap(m.variantIdx+1, len(ui.VariantsFor(m.kind())))
		case "tab":
			m.kindIdx = wrap(m.kindIdx+1, len(m.kinds))
			m.sizeIdx = 0
			m.variantIdx = 0
		case "d":
			m.disabled = !m.disabled
		case "s":
			m.loading = !m.loading
		}
	}

	return m, nil
}

func wrap(index, length int) int {
	if length == 0 {
		return 0
	}
	return ((index % length) + length) % length
}
