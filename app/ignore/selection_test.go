package ignore

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSelectedItemsFreshDetection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), "{}")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref: refs/heads/main\n")
	// The recorded selection must be ignored in fresh mode.
	writeFile(t, filepath.Join(dir, ".gitignore"), "# Created by https://x/api/windows,java\n")

	testCases := []struct {
		name string
		goos string
		want []string
	}{
		{name: "linux host", goos: "linux", want: []string{"visualstudiocode", "linux", "git", "node"}},
		{name: "mac host", goos: "darwin", want: []string{"visualstudiocode", "macos", "git", "node"}},
		{name: "unknown host", goos: "plan9", want: []string{"visualstudiocode", "git", "node"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, nil)
			svc.GOOS = tc.goos
			got, err := svc.SelectedItems(filepath.Join(dir, ".gitignore"), false)
			if err != nil {
				t.Fatalf("SelectedItems: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SelectedItems = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectedItemsFreshModeNeverReadsFile(t *testing.T) {
	fs := &countingFS{}
	svc := NewService(DefaultSettings(), fs, nil)
	svc.GOOS = "windows"

	got, err := svc.SelectedItems("/definitely/not/here/\x00garbage", false)
	if err != nil {
		t.Fatalf("SelectedItems: %v", err)
	}
	if fs.reads != 0 {
		t.Errorf("ReadFile called %d times in fresh mode", fs.reads)
	}
	if want := []string{"visualstudiocode", "windows"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedItems = %v, want %v", got, want)
	}
}

func TestSelectedItemsKeepCurrent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), "{}")
	path := filepath.Join(dir, ".gitignore")
	writeFile(t, path, "# Generated by nextgen-ignore (ngi)\n# Created by https://x/api/windows,java,,java\n*.class\n")

	svc := newTestService(t, nil)
	got, err := svc.SelectedItems(path, true)
	if err != nil {
		t.Fatalf("SelectedItems: %v", err)
	}
	if want := []string{"windows", "java"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedItems = %v, want %v (OS and project signals must be ignored)", got, want)
	}
}

func TestSelectedItemsKeepCurrentWithoutFile(t *testing.T) {
	svc := newTestService(t, nil)

	got, err := svc.SelectedItems(filepath.Join(t.TempDir(), ".gitignore"), true)
	if err != nil || len(got) != 0 {
		t.Errorf("missing file: got %v, %v; want empty, nil", got, err)
	}

	got, err = svc.SelectedItems("", true)
	if err != nil || len(got) != 0 {
		t.Errorf("empty path: got %v, %v; want empty, nil", got, err)
	}
}

func TestSelectedItemsFreshModeRequiresPath(t *testing.T) {
	svc := newTestService(t, nil)
	if _, err := svc.SelectedItems("", false); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
}

func TestSelectedItemsCustomAlwaysSelected(t *testing.T) {
	settings := DefaultSettings()
	settings.AlwaysSelected = []string{"jetbrains", "", "linux"}
	svc := NewService(settings, OSFileSystem{}, nil)
	svc.GOOS = "linux"

	got, err := svc.SelectedItems(filepath.Join(t.TempDir(), ".gitignore"), false)
	if err != nil {
		t.Fatalf("SelectedItems: %v", err)
	}
	if want := []string{"jetbrains", "linux"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedItems = %v, want %v", got, want)
	}
}
