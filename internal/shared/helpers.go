// Package shared provides common utility functions used across multiple
// packages in the portquery codebase.
package shared

import (
	"fmt"
	"strings"
)

// OriginFromPath reduces a filesystem path inside the ports tree to its
// category/name origin.
func OriginFromPath(path string) string {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 {
		return trimmed
	}
	return strings.Join(segments[len(segments)-2:], "/")
}

// OriginDir flattens a category/name origin into the directory name the
// port options database uses for it.
func OriginDir(origin string) string {
	return strings.ReplaceAll(strings.TrimSpace(origin), "/", "_")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
