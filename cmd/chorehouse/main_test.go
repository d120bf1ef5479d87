package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestListLibraries(t *testing.T) {
	var buf bytes.Buffer
	if err := listLibraries(&buf, filepath.Join("..", "..", "data")); err != nil {
		t.Fatalf("listLibraries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "house\n") {
		t.Errorf("Expected the house directory in output, got:\n%s", out)
	}
	if !strings.Contains(out, "(up to 10 rooms)") {
		t.Errorf("Expected the default library to allow 10 rooms, got:\n%s", out)
	}
}

func TestListLibrariesEmpty(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	if err := listLibraries(&buf, dir); err != nil {
		t.Fatalf("listLibraries failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No room libraries found") {
		t.Errorf("Expected empty message, got %q", buf.String())
	}
}
