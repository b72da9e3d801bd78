package ignore

import (
	"context"
	"os"
)

// Fetcher retrieves raw text from the catalog API. path is relative to the
// API base URL (e.g. "list" or "linux,node").
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// FileSystem is the narrow set of file operations the generator needs.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// ReadFile reads the named file.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists reports whether a file or directory exists at path.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
