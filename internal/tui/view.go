package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/accompanyhq/htmlui/internal/ui"
)

// View renders the current grid position, the resolved class tokens and
// the markup fragment the combination produces.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("htmlui component preview"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab kind · ↑/↓ size · ←/→ variant · d disabled · s loading · q quit"))
	b.WriteString("\n\n")

	state := fmt.Sprintf("%s · size=%s · variant=%s", m.kind(), m.size(), m.variant())
	if m.disabled {
		state += " · disabled"
	}
	if m.loading {
		state += " · " + m.spinner.View() + "loading"
	}
	b.WriteString(sectionStyle.Render(state))
	b.WriteString("\n\n")

	classes, err := ui.Resolve(m.kind(), m.size(), m.variant())
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(labelStyle.Render("classes"))
	b.WriteString("\n")
	b.WriteString(wrapTokens(classes, m.width-4))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("markup"))
	b.WriteString("\n")
	markup, err := m.renderMarkup()
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(markupStyle.Width(min(m.width-2, 100)).Render(markup))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderMarkup() (string, error) {
	switch m.kind() {
	case ui.KindBadge:
		markup, err := m.renderer.Badge(ui.BadgeRequest{
			Label:   "Overdue",
			Size:    m.size(),
			Variant: m.variant(),
		})
		return string(markup), err
	default:
		markup, err := m.renderer.Button(ui.ButtonRequest{
			Label:    "Save changes",
			IconName: "save",
			Size:     m.size(),
			Variant:  m.variant(),
			Disabled: m.disabled,
			Loading:  m.loading,
		})
		return string(markup), err
	}
}

func wrapTokens(tokens []string, width int) string {
	if width < 20 {
		width = 20
	}

	var lines []string
	line := ""
	for _, token := range tokens {
		if line != "" && lipgloss.Width(line)+len(token)+1 > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += token
	}
	if line != "" {
		lines = append(lines, line)
	}
	return tokenStyle.Render(strings.Join(lines, "\n"))
}
