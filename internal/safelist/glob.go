package safelist

import (
	"io/fs"
	"path"
	"sort"
	"strings"
)

// expandGlobs walks the source tree once and returns every file selected
// by at least one content glob, sorted for a deterministic scan order.
func expandGlobs(source fs.FS, globs []string) ([]string, error) {
	var files []string
	err := fs.WalkDir(source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, glob := range globs {
			if matchGlob(glob, p) {
				files = append(files, p)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// matchGlob matches a slash-separated path against a glob whose "**"
// segment spans any number of path segments; other segments follow
// path.Match semantics.
func matchGlob(glob, p string) bool {
	return matchSegments(strings.Split(glob, "/"), strings.Split(p, "/"))
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], segments) {
			return true
		}
		if len(segments) == 0 {
			return false
		}
		return matchSegments(pattern, segments[1:])
	}
	if len(segments) == 0 {
		return false
	}
	ok, err := path.Match(pattern[0], segments[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}
