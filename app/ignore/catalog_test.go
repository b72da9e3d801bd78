package ignore

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestSplitCatalogDropsLastElement(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trailing comma", raw: "a,b,c,", want: []string{"a", "b", "c"}},
		{name: "trailing newline", raw: "a,b\nc,d\n", want: []string{"a", "b", "c", "d"}},
		{name: "crlf runs collapse", raw: "a,\r\n,b\r\n", want: []string{"a", "b"}},
		{name: "no trailing delimiter drops last entry", raw: "a,b,c", want: []string{"a", "b"}},
		{name: "single entry without delimiter", raw: "a", want: []string{}},
		{name: "empty catalog", raw: "", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(SplitCatalog(tc.raw, nil))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitCatalog(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSplitCatalogStablePartition(t *testing.T) {
	got := SplitCatalog("a,b,c,d,", []string{"a", "c"})
	want := []Entry{
		{Name: "a", Picked: true},
		{Name: "c", Picked: true},
		{Name: "b"},
		{Name: "d"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitCatalog = %+v, want %+v", got, want)
	}
}

func TestSplitCatalogKeepsCatalogOrderNotSelectionOrder(t *testing.T) {
	got := names(SplitCatalog("go,linux,macos,node,zsh,", []string{"node", "linux", "missing"}))
	want := []string{"linux", "node", "go", "macos", "zsh"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestListFetchFailureIsNotEmpty(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t, &fakeFetcher{err: errors.New("connection refused")})

	entries, err := svc.List(context.Background(), dir+"/.gitignore", false)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
	if entries != nil {
		t.Errorf("entries = %v, want nil", entries)
	}

	svc.Fetcher = &fakeFetcher{responses: map[string]string{"list": ""}}
	entries, err = svc.List(context.Background(), dir+"/.gitignore", false)
	if err != nil {
		t.Fatalf("empty catalog: unexpected error %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("empty catalog entries = %#v, want empty non-nil slice", entries)
	}
}

func TestListMarksDetectedTemplates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/package.json", "{}")
	fetcher := &fakeFetcher{responses: map[string]string{"list": "go,linux,node,visualstudiocode,windows\n"}}
	svc := newTestService(t, fetcher)

	entries, err := svc.List(context.Background(), dir+"/.gitignore", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got, want := PickedNames(entries), []string{"linux", "node", "visualstudiocode"}; !reflect.DeepEqual(got, want) {
		t.Errorf("picked = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(fetcher.requests, []string{"list"}) {
		t.Errorf("requests = %v", fetcher.requests)
	}
}

func TestContentJoinsAndEscapesNames(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{"linux,c++,node": "body"}}
	svc := newTestService(t, fetcher)

	body, err := svc.Content(context.Background(), []string{"linux", "c++", "", "node", "linux"})
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if body != "body" {
		t.Errorf("body = %q", body)
	}

	if _, err := svc.Content(context.Background(), nil); !errors.Is(err, ErrNoData) {
		t.Errorf("no names: err = %v, want ErrNoData", err)
	}
}
