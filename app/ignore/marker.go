package ignore

import (
	"regexp"
	"strings"
)

// The marker line records which templates a file was generated from:
//
//	marker   = "# Created by" source "/" names
//	source   = any text (at least one character) up to the last "/"
//	names    = name *( "," name )
//
// The catalog API writes this line itself at the top of every body it serves.
const markerPrefix = "# Created by"

var markerRegex = regexp.MustCompile(`(?m)^# Created by.+/(.+)$`)

// FormatMarker renders the marker line for the given source URL and template names.
func FormatMarker(source string, names []string) string {
	return markerPrefix + " " + strings.TrimRight(source, "/") + "/" + strings.Join(names, ",")
}

// ParseMarker decodes a single marker line. It reports false when line does
// not follow the marker grammar.
func ParseMarker(line string) ([]string, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.Contains(line, "\n") {
		return nil, false
	}
	return FindMarker(line)
}

// FindMarker searches text for the first marker line and returns its names.
func FindMarker(text string) ([]string, bool) {
	match := markerRegex.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}
	list := strings.TrimRight(match[1], "\r")
	if list == "" {
		return nil, false
	}
	return strings.Split(list, ","), true
}
