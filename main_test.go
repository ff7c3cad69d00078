package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordscramble/internal/words"
)

func TestLoadRootsFallsBackToBundled(t *testing.T) {
	roots := loadRoots(filepath.Join(t.TempDir(), "missing.txt"))
	if roots.Len() == 0 {
		t.Fatal("expected bundled roots")
	}
	if roots.Random() == words.DefaultRoot && !roots.Contains(words.DefaultRoot) {
		t.Error("expected a root from the bundled list")
	}
}

func TestLoadRootsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.txt")
	if err := os.WriteFile(path, []byte("silent\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	roots := loadRoots(path)
	if roots.Len() != 1 || roots.Random() != "silent" {
		t.Errorf("expected single root silent, got %d roots from %s", roots.Len(), roots.Source())
	}
}
