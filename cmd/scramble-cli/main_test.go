package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/logging"
)

func TestLoadRootsWarnsOnFallback(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = logging.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	path := filepath.Join(t.TempDir(), "missing.txt")
	roots := loadRoots(path)
	if roots.Len() == 0 {
		t.Fatal("expected bundled roots")
	}

	out := buf.String()
	if !strings.Contains(out, "using bundled root words") || !strings.Contains(out, path) {
		t.Errorf("expected a fallback warning naming %s, got %q", path, out)
	}
}
