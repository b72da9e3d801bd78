package ignore

import (
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
)

// CurrentItems returns the template names recorded in the marker line of the
// file at path. A missing or unreadable file yields an empty list.
func (s *Service) CurrentItems(path string) []string {
	data, err := s.FS.ReadFile(path)
	if err != nil {
		cli.Debugf("no existing file at %s: %v", path, err)
		return []string{}
	}
	names, ok := FindMarker(string(data))
	if !ok {
		return []string{}
	}
	return names
}

// UserRules returns the custom rules following the user-rules marker in the
// file at path, trimmed of surrounding whitespace. It reports false when the
// file is unreadable, has no marker, or the block is empty.
func (s *Service) UserRules(path string) (string, bool) {
	data, err := s.FS.ReadFile(path)
	if err != nil {
		return "", false
	}
	_, after, found := strings.Cut(string(data), s.Settings.UserRulesMarker)
	if !found {
		return "", false
	}
	rules := strings.TrimSpace(after)
	if rules == "" {
		return "", false
	}
	return rules, true
}
