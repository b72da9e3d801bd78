package project

import (
	"os"
	"path/filepath"
)

// ToolingMarkers pairs a catalog template with the files or directories that
// reveal the tooling in a project root.
type ToolingMarkers struct {
	Name    string
	Markers []string
}

// knownTooling is checked in order; the order only affects how results are listed.
var knownTooling = []ToolingMarkers{
	{Name: "bower", Markers: []string{"bower.json"}},
	{Name: "composer", Markers: []string{"composer.json"}},
	{Name: "git", Markers: []string{".git"}},
	{Name: "gradle", Markers: []string{"settings.gradle", "settings.gradle.kts", "build.gradle", "build.gradle.kts"}},
	{Name: "node", Markers: []string{"package.json"}},
	{Name: "ruby", Markers: []string{"Gemfile"}},
}

// KnownTooling returns a copy of the tooling table.
func KnownTooling() []ToolingMarkers {
	out := make([]ToolingMarkers, len(knownTooling))
	for i, t := range knownTooling {
		out[i] = ToolingMarkers{Name: t.Name, Markers: append([]string(nil), t.Markers...)}
	}
	return out
}

// ExistsFunc reports whether a file or directory exists at path.
type ExistsFunc func(path string) bool

// DetectTooling returns the names of the tooling whose markers sit directly
// inside dir. A tooling matches when any one of its markers exists.
func DetectTooling(dir string, exists ExistsFunc) []string {
	detected := []string{}
	for _, tooling := range knownTooling {
		for _, marker := range tooling.Markers {
			if exists(filepath.Join(dir, marker)) {
				detected = append(detected, tooling.Name)
				break
			}
		}
	}
	return detected
}

// Detect runs DetectTooling against the real file system.
func Detect(dir string) []string {
	return DetectTooling(dir, pathExists)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
