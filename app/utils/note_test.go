package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNotePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "No Extension", input: "notes", expected: "notes.txt"},
		{name: "Keeps Extension", input: "todo.md", expected: "todo.md"},
		{name: "Trims Space", input: "  shopping  ", expected: "shopping.txt"},
		{name: "Directory Part", input: "dir/plan", expected: "dir/plan.txt"},
		{name: "Empty", input: "   ", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := NotePath(tc.input); actual != tc.expected {
				t.Errorf("NotePath(%q) mismatch: expected %q, got %q", tc.input, tc.expected, actual)
			}
		})
	}
}

func TestSaveNote(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveNote(filepath.Join(dir, "hello"), "line one\nline two")
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}
	if expected := filepath.Join(dir, "hello.txt"); path != expected {
		t.Errorf("path mismatch: expected %q, got %q", expected, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "line one\nline two" {
		t.Errorf("content mismatch: got %q", string(data))
	}

	if _, err := SaveNote("", "text"); err == nil {
		t.Error("expected an error for an empty name")
	}
	if _, err := SaveNote(filepath.Join(dir, "missing", "x.txt"), "text"); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
