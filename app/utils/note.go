package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NotePath trims the typed path and appends ".txt" when it has no extension.
func NotePath(input string) string {
	path := strings.TrimSpace(input)
	if path == "" {
		return ""
	}
	if filepath.Ext(path) == "" {
		path += ".txt"
	}
	return path
}

// SaveNote writes text to the path derived from input and returns that path.
func SaveNote(input, text string) (string, error) {
	path := NotePath(input)
	if path == "" {
		return "", fmt.Errorf("no file name given")
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to save note to %s: %w", path, err)
	}
	return path, nil
}
