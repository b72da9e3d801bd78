package ignore

import (
	"reflect"
	"sort"
	"testing"
)

func TestFormatMarker(t *testing.T) {
	got := FormatMarker("https://example.com/api/", []string{"linux", "git", "node"})
	want := "# Created by https://example.com/api/linux,git,node"
	if got != want {
		t.Fatalf("FormatMarker = %q, want %q", got, want)
	}
}

func TestParseMarker(t *testing.T) {
	testCases := []struct {
		name   string
		line   string
		want   []string
		wantOK bool
	}{
		{name: "api line", line: "# Created by https://www.toptal.com/developers/gitignore/api/macos,node", want: []string{"macos", "node"}, wantOK: true},
		{name: "captures after last slash", line: "# Created by a/b/c/x,y", want: []string{"x", "y"}, wantOK: true},
		{name: "crlf ending", line: "# Created by https://x/api/linux\r\n", want: []string{"linux"}, wantOK: true},
		{name: "no slash", line: "# Created by hand", wantOK: false},
		{name: "not at line start", line: "  # Created by https://x/api/linux", wantOK: false},
		{name: "multiple lines rejected", line: "x\n# Created by https://x/api/linux", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseMarker(tc.line)
			if ok != tc.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tc.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tc.want) {
				t.Errorf("names = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFindMarkerUsesFirstMarkerLine(t *testing.T) {
	text := "# Generated\n# Created by https://x/api/linux,go\nfoo\n# Created by https://x/api/windows\n"
	got, ok := FindMarker(text)
	if !ok || !reflect.DeepEqual(got, []string{"linux", "go"}) {
		t.Fatalf("FindMarker = %v, %t", got, ok)
	}
}

func TestMarkerRoundTrip(t *testing.T) {
	selection := []string{"linux", "git", "node"}
	names, ok := ParseMarker(FormatMarker(DefaultAPIURL, selection))
	if !ok {
		t.Fatal("marker written by FormatMarker did not parse")
	}

	got := append([]string(nil), names...)
	want := append([]string(nil), selection...)
	sort.Strings(got)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}
