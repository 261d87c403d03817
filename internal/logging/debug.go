package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
)

// DebugEnabled returns true if debug mode is enabled via PC_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("PC_DEBUG") != ""
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(output, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(output, args...)
	}
}
