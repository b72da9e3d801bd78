package ignore

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Entry is one template of the catalog as offered to the user.
type Entry struct {
	Name   string
	Picked bool
}

var catalogDelimiters = regexp.MustCompile(`[,\n\r]+`)

// SplitCatalog splits raw catalog text into entries, marks the ones present in
// selected, and moves picked entries ahead of the others without changing the
// order inside either group.
//
// The catalog always ends with a delimiter, so the last split element is
// trailing residue and is dropped unconditionally, even when the text does
// not end with a delimiter.
func SplitCatalog(raw string, selected []string) []Entry {
	parts := catalogDelimiters.Split(raw, -1)
	parts = parts[:len(parts)-1]

	picked := make(map[string]bool, len(selected))
	for _, name := range selected {
		picked[name] = true
	}

	entries := make([]Entry, 0, len(parts))
	for _, name := range parts {
		entries = append(entries, Entry{Name: name, Picked: picked[name]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Picked && !entries[j].Picked
	})
	return entries
}

// List fetches the catalog and returns it split against the selection for path.
// A failed fetch returns an error wrapping ErrNoData and no entries; a catalog
// that is reachable but empty returns an empty, non-nil slice.
func (s *Service) List(ctx context.Context, path string, keepCurrent bool) ([]Entry, error) {
	raw, err := s.Fetcher.Fetch(ctx, "list")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	selected, err := s.SelectedItems(path, keepCurrent)
	if err != nil {
		return nil, err
	}
	return SplitCatalog(raw, selected), nil
}

// Content fetches the combined template body for the given names.
func (s *Service) Content(ctx context.Context, names []string) (string, error) {
	names = compact(names)
	if len(names) == 0 {
		return "", fmt.Errorf("%w: no templates chosen", ErrNoData)
	}
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = url.PathEscape(name)
	}
	body, err := s.Fetcher.Fetch(ctx, strings.Join(escaped, ","))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoData, err)
	}
	return body, nil
}

// PickedNames returns the names of the picked entries, in order.
func PickedNames(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if e.Picked {
			names = append(names, e.Name)
		}
	}
	return names
}
