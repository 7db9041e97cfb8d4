package safelist

import (
	"strings"

	"github.com/accompanyhq/htmlui/internal/ui"
)

// Report pairs the two ways a safelist configuration can drift from the
// components: patterns that no longer match anything the renderers emit,
// and theme-bound emitted classes no pattern covers.
type Report struct {
	// OrphanedPatterns match no class any valid render combination emits.
	OrphanedPatterns []string

	// UnmatchedClasses are emitted theme-token-bound classes that no
	// registered pattern matches; they would be purged from a stylesheet
	// built on the pattern scan alone.
	UnmatchedClasses []string
}

// Clean reports whether the patterns and the emitted class set agree.
func (r Report) Clean() bool {
	return len(r.OrphanedPatterns) == 0 && len(r.UnmatchedClasses) == 0
}

// Verify checks every registered pattern against the exhaustive emitted
// class enumeration.
func Verify(patterns []Pattern) Report {
	emitted := ui.EmittedClasses()

	var report Report
	for _, pattern := range patterns {
		matched := false
		for _, class := range emitted {
			if pattern.anchored.MatchString(class) {
				matched = true
				break
			}
		}
		if !matched {
			report.OrphanedPatterns = append(report.OrphanedPatterns, pattern.Source)
		}
	}

	for _, class := range emitted {
		if !strings.Contains(class, "var(--") {
			continue
		}
		matched := false
		for _, pattern := range patterns {
			if pattern.anchored.MatchString(class) {
				matched = true
				break
			}
		}
		if !matched {
			report.UnmatchedClasses = append(report.UnmatchedClasses, class)
		}
	}

	return report
}
