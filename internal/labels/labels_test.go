package labels

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLabelsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write labels file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeLabelsFile(t, "tabby cat\ngolden retriever\nparrot\n")

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if tab.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tab.Len())
	}
	if got := tab.Name(0); got != "tabby cat" {
		t.Errorf("Name(0) = %q, want 'tabby cat'", got)
	}
	if got := tab.Name(2); got != "parrot" {
		t.Errorf("Name(2) = %q, want 'parrot'", got)
	}
}

func TestLoadTrimsAndNormalizes(t *testing.T) {
	// "café" with the accent as a combining mark should normalize to the
	// precomposed NFC form.
	path := writeLabelsFile(t, "  café  \n")

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := tab.Name(0); got != "café" {
		t.Errorf("Name(0) = %q, want precomposed 'café'", got)
	}
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := writeLabelsFile(t, "")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty labels file, got nil")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load("/nonexistent/labels.txt"); err == nil {
		t.Fatal("expected error for missing labels file, got nil")
	}
}

func TestNameOutOfRange(t *testing.T) {
	path := writeLabelsFile(t, "only\n")

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := tab.Name(7); got != "class_7" {
		t.Errorf("Name(7) = %q, want class_7", got)
	}
	if got := tab.Name(-1); got != "class_-1" {
		t.Errorf("Name(-1) = %q, want class_-1", got)
	}
}
