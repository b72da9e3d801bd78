package ignore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeFetcher serves canned responses keyed by request path.
type fakeFetcher struct {
	responses map[string]string
	err       error
	requests  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) (string, error) {
	f.requests = append(f.requests, path)
	if f.err != nil {
		return "", f.err
	}
	body, ok := f.responses[path]
	if !ok {
		return "", errors.New("404 not found")
	}
	return body, nil
}

// countingFS wraps OSFileSystem and counts reads.
type countingFS struct {
	OSFileSystem
	reads int
}

func (c *countingFS) ReadFile(path string) ([]byte, error) {
	c.reads++
	return c.OSFileSystem.ReadFile(path)
}

func newTestService(t *testing.T, fetcher Fetcher) *Service {
	t.Helper()
	svc := NewService(DefaultSettings(), OSFileSystem{}, fetcher)
	svc.GOOS = "linux"
	return svc
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
