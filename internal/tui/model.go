// Package tui implements the component preview: a terminal walkthrough of
// the (kind x size x variant) grid showing the resolved class list and the
// markup each combination renders.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/accompanyhq/htmlui/internal/ui"
)

// Model contains the Bubbletea state for the component preview.
type Model struct {
	renderer *ui.Renderer

	kinds      []ui.Kind
	kindIdx    int
	sizeIdx    int
	variantIdx int

	disabled bool
	loading  bool

	spinner  spinner.Model
	width    int
	quitting bool
}

// NewModel constructs a preview model over the given renderer.
func NewModel(renderer *ui.Renderer) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		renderer: renderer,
		kinds:    ui.Kinds(),
		spinner:  s,
		width:    80,
	}
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) kind() ui.Kind {
	return m.kinds[m.kindIdx]
}

func (m Model) size() ui.Size {
	return ui.SizesFor(m.kind())[m.sizeIdx]
}

func (m Model) variant() ui.Variant {
	return ui.VariantsFor(m.kind())[m.variantIdx]
}
