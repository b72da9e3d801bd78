// Package ignore builds ignore files from the template catalog, the host
// platform, project markers and any previously generated file.
package ignore

import (
	"runtime"
)

// Service ties the generator components to their collaborators.
type Service struct {
	Settings Settings
	FS       FileSystem
	Fetcher  Fetcher
	// GOOS is the host platform identifier used for platform detection.
	GOOS string
}

// NewService returns a Service for the host platform. A nil fs uses OSFileSystem.
func NewService(settings Settings, fs FileSystem, fetcher Fetcher) *Service {
	if fs == nil {
		fs = OSFileSystem{}
	}
	return &Service{
		Settings: settings.withDefaults(),
		FS:       fs,
		Fetcher:  fetcher,
		GOOS:     runtime.GOOS,
	}
}
