package project

import "runtime"

// platformTemplates maps runtime.GOOS values to catalog template names.
var platformTemplates = []struct {
	GOOS     string
	Template string
}{
	{GOOS: "darwin", Template: "macos"},
	{GOOS: "linux", Template: "linux"},
	{GOOS: "windows", Template: "windows"},
}

// PlatformTemplate returns the template name for a platform identifier, or
// false when the platform has no template.
func PlatformTemplate(goos string) (string, bool) {
	for _, p := range platformTemplates {
		if p.GOOS == goos {
			return p.Template, true
		}
	}
	return "", false
}

// HostPlatformTemplate is PlatformTemplate for the running binary.
func HostPlatformTemplate() (string, bool) {
	return PlatformTemplate(runtime.GOOS)
}
