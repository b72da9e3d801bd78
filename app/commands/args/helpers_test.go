package args

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
)

const testCatalog = "go,linux,macos,node,visualstudiocode,windows\n"

// catalogServer imitates the template API: /api/list and /api/<names>.
type catalogServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []string
	fail     bool
}

func newCatalogServer(t *testing.T) *catalogServer {
	t.Helper()
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names := strings.TrimPrefix(r.URL.Path, "/api/")
		cs.mu.Lock()
		cs.requests = append(cs.requests, names)
		fail := cs.fail
		cs.mu.Unlock()

		if fail {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		if names == "list" {
			w.Write([]byte(testCatalog))
			return
		}
		w.Write([]byte(templateBody(cs.URL, names)))
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *catalogServer) lastRequest() string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.requests) == 0 {
		return ""
	}
	return cs.requests[len(cs.requests)-1]
}

func templateBody(base, names string) string {
	var b strings.Builder
	b.WriteString("\n# Created by " + base + "/api/" + names + "\n")
	for _, name := range strings.Split(names, ",") {
		b.WriteString("\n### " + name + " ###\n" + name + "-artifact\n")
	}
	b.WriteString("\n# End of " + base + "/api/" + names + "\n")
	return b.String()
}

// setupCommandEnv points config, history and the catalog at test locations.
func setupCommandEnv(t *testing.T) (*catalogServer, string) {
	t.Helper()
	cs := newCatalogServer(t)
	configDir := t.TempDir()
	t.Setenv("NGI_CONFIG_DIR", configDir)
	t.Setenv("NGI_API_URL", cs.URL+"/api")
	return cs, configDir
}

// runCommand parses argv like main does and executes it, capturing stdout.
func runCommand(t *testing.T, argv ...string) (string, error) {
	t.Helper()
	parsed := cli.ParseCommandLineArgs(argv, RegistryChecker{})
	if len(parsed.Errors) > 0 {
		t.Fatalf("parse %v: %v", argv, parsed.Errors)
	}

	var buf bytes.Buffer
	previous := stdout
	stdout = &buf
	defer func() { stdout = previous }()

	err := Execute(parsed)
	return buf.String(), err
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
