package ignore

import "strings"

// Default values used when no configuration overrides them.
const (
	DefaultAPIURL          = "https://www.toptal.com/developers/gitignore/api"
	DefaultBanner          = "Generated by nextgen-ignore (ngi)"
	DefaultUserRulesMarker = "Custom rules (everything added below won't be overridden by 'ngi generate')"
	DefaultFileName        = ".gitignore"
)

// Settings carries the values shared by every component of the generator.
// Nothing here is global; each Service gets its own copy.
type Settings struct {
	APIURL          string   // Base URL of the template catalog API (no trailing slash)
	Banner          string   // Text written on the first line of generated files
	UserRulesMarker string   // Text of the line separating generated rules from custom ones
	AlwaysSelected  []string // Templates pre-selected in fresh detection mode
	FileName        string   // Default output file name
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		APIURL:          DefaultAPIURL,
		Banner:          DefaultBanner,
		UserRulesMarker: DefaultUserRulesMarker,
		AlwaysSelected:  []string{"visualstudiocode"},
		FileName:        DefaultFileName,
	}
}

// withDefaults fills empty fields from DefaultSettings.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if strings.TrimSpace(s.APIURL) == "" {
		s.APIURL = d.APIURL
	}
	s.APIURL = strings.TrimRight(s.APIURL, "/")
	if s.Banner == "" {
		s.Banner = d.Banner
	}
	if s.UserRulesMarker == "" {
		s.UserRulesMarker = d.UserRulesMarker
	}
	if len(s.AlwaysSelected) == 0 {
		s.AlwaysSelected = d.AlwaysSelected
	}
	if s.FileName == "" {
		s.FileName = d.FileName
	}
	return s
}
