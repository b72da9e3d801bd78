package cli

import (
	"fmt"
	"io"
	"os"
)

// logOutput is where debug and verbose messages go.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects debug and verbose messages (used by tests).
func SetLogOutput(w io.Writer) { logOutput = w }

// Debugf prints a DEBUG line when --debug is on.
func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(logOutput, "DEBUG: "+format+"\n", args...)
}

// Infof prints an informational line when --verbose or --debug is on.
func Infof(format string, args ...any) {
	if !verboseEnabled && !debugEnabled {
		return
	}
	fmt.Fprintf(logOutput, format+"\n", args...)
}

// Warnf always prints a warning line.
func Warnf(format string, args ...any) {
	fmt.Fprintf(logOutput, "Warning: "+format+"\n", args...)
}
