package theme

import (
	"fmt"
	"io"
)

// WriteCSS emits the compiled custom-property stylesheet: the light mode
// tokens on :root, and every other mode behind a root-level data-theme
// selector. Output is sorted by token name so repeated builds are
// byte-identical.
func (s *Store) WriteCSS(w io.Writer) error {
	if err := s.writeModeBlock(w, ":root", ModeLight); err != nil {
		return err
	}

	for _, mode := range Modes() {
		if mode == ModeLight {
			continue
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		selector := fmt.Sprintf("[data-theme=%q]", string(mode))
		if err := s.writeModeBlock(w, selector, mode); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) writeModeBlock(w io.Writer, selector string, mode Mode) error {
	if _, err := fmt.Fprintf(w, "%s {\n", selector); err != nil {
		return err
	}
	for _, name := range s.names {
		if _, err := fmt.Fprintf(w, "  --%s: %s;\n", name, s.tokens[mode][name]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// Var renders a token reference as a CSS var() expression, the form class
// tokens use to bind to the theme.
func Var(name string) string {
	return "var(--" + name + ")"
}
