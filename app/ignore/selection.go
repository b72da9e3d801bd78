package ignore

import (
	"path/filepath"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/project"
)

// SelectedItems returns the templates that should start out picked.
//
// With keepCurrent false the selection is detected afresh: the always-selected
// templates, the host platform and the tooling found next to path. path must
// be set in that mode. With keepCurrent true only the names recorded in the
// file at path are used.
func (s *Service) SelectedItems(path string, keepCurrent bool) ([]string, error) {
	var selected []string

	if !keepCurrent {
		if path == "" {
			return nil, ErrInvalidPath
		}
		selected = append(selected, s.Settings.AlwaysSelected...)
		if platform, ok := project.PlatformTemplate(s.GOOS); ok {
			selected = append(selected, platform)
		}
		selected = append(selected, project.DetectTooling(filepath.Dir(path), s.FS.Exists)...)
	} else if path != "" {
		selected = append(selected, s.CurrentItems(path)...)
	}

	return compact(selected), nil
}

// compact drops empty names and repeats, keeping first occurrences in order.
func compact(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
