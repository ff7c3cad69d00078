package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordscramble/internal/config"
)

var sample = []string{"lines", "silt", "list", "Listen", "  tile "}

// checkOracle runs the shared expectations every backend must meet.
func checkOracle(t *testing.T, o Oracle) {
	t.Helper()
	ctx := context.Background()

	cases := []struct {
		word string
		lang string
		want bool
	}{
		{"lines", "en", true},
		{"LINES", "en", true},
		{"listen", "en-GB", true},
		{"tile", "en", true},
		{"snile", "en", false},
		{"", "en", false},
		{"lines", "fr", false},
	}
	for _, c := range cases {
		got, err := o.IsValidWord(ctx, c.word, c.lang)
		if err != nil {
			t.Fatalf("IsValidWord(%q, %q): %v", c.word, c.lang, err)
		}
		if got != c.want {
			t.Errorf("IsValidWord(%q, %q): expected %v got %v", c.word, c.lang, c.want, got)
		}
	}

	if _, err := o.IsValidWord(ctx, "lines", "!!"); err == nil {
		t.Error("expected error for malformed language tag")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	m.Add("en", sample...)
	checkOracle(t, m)

	if n := m.Len("en"); n != len(sample) {
		t.Errorf("expected %d words got %d", len(sample), n)
	}
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Import(ctx, "en", "test", sample); err != nil {
		t.Fatal(err)
	}
	// the same list twice is a no-op
	if err := s.Import(ctx, "en", "test", sample); err != nil {
		t.Fatal(err)
	}
	checkOracle(t, s)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// migrations and data survive reopening
	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	checkOracle(t, s)
}

func TestBolt(t *testing.T) {
	ctx := context.Background()
	b, err := OpenBolt(ctx, filepath.Join(t.TempDir(), "lexicon.bolt"))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if err := b.Import(ctx, "en", sample); err != nil {
		t.Fatal(err)
	}
	checkOracle(t, b)
}

type countingOracle struct {
	calls int
	err   error
}

func (c *countingOracle) IsValidWord(_ context.Context, word, _ string) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	return word == "lines", nil
}

func TestCachedHitsBackendOnce(t *testing.T) {
	ctx := context.Background()
	backend := &countingOracle{}
	c, err := NewCached(backend, 8)
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range []string{"lines", "Lines", " lines\n", "snile", "snile"} {
		if _, err := c.IsValidWord(ctx, w, "en"); err != nil {
			t.Fatal(err)
		}
	}
	if backend.calls != 2 {
		t.Errorf("expected 2 backend calls got %d", backend.calls)
	}

	ok, _ := c.IsValidWord(ctx, "LINES", "en-US")
	if !ok {
		t.Error("expected cached positive verdict")
	}
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	backend := &countingOracle{err: errors.New("backend down")}
	c, err := NewCached(backend, 8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := c.IsValidWord(ctx, "lines", "en"); err == nil {
			t.Fatal("expected backend error")
		}
	}
	if backend.calls != 2 {
		t.Errorf("expected errors to reach backend each time, got %d calls", backend.calls)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(file, []byte("# test list\nlines\nsilt\nlist\nlisten\ntile\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, backend := range []string{"memory", "sqlite", "bolt"} {
		t.Run(backend, func(t *testing.T) {
			o, closer, err := Open(context.Background(), config.Dictionary{
				Backend:   backend,
				Lang:      "en",
				File:      file,
				SQLite:    filepath.Join(dir, backend+".db"),
				BoltPath:  filepath.Join(dir, backend+".bolt"),
				CacheSize: 16,
			})
			if err != nil {
				t.Fatal(err)
			}
			defer closer()
			checkOracle(t, o)
		})
	}
}

func TestOpenBundledLexicon(t *testing.T) {
	o, closer, err := Open(context.Background(), config.Dictionary{Backend: "memory", Lang: "en"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	ok, err := o.IsValidWord(context.Background(), "lines", "en")
	if err != nil || !ok {
		t.Errorf("expected bundled lexicon to know %q (%v)", "lines", err)
	}
}

func TestBundledLexiconKnowsDerivedWords(t *testing.T) {
	ctx := context.Background()
	o, closer, err := Open(ctx, config.Dictionary{Backend: "memory", Lang: "en"})
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	derived := map[string][]string{
		"painters": {"pants", "rates", "sprain", "painter"},
		"sandwich": {"hands", "wands", "chains", "dawns"},
		"mastered": {"tease", "steamed", "dreams", "master"},
		"triangle": {"tangle", "angler", "glean"},
		"shoulder": {"holder", "hurdles"},
		"dinosaur": {"sound", "radios"},
	}
	for root, list := range derived {
		for _, w := range list {
			ok, err := o.IsValidWord(ctx, w, "en")
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Errorf("%s: expected %q to be a known word", root, w)
			}
		}
	}
}

func TestOpenReimportsChangedFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "words.txt")

	for _, backend := range []string{"sqlite", "bolt"} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Dictionary{
				Backend:  backend,
				Lang:     "en",
				File:     file,
				SQLite:   filepath.Join(dir, backend+".db"),
				BoltPath: filepath.Join(dir, backend+".bolt"),
			}
			lookup := func(word string) bool {
				t.Helper()
				o, closer, err := Open(ctx, cfg)
				if err != nil {
					t.Fatal(err)
				}
				defer closer()
				ok, err := o.IsValidWord(ctx, word, "en")
				if err != nil {
					t.Fatal(err)
				}
				return ok
			}

			if err := os.WriteFile(file, []byte("lines\nsilt\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			if !lookup("silt") {
				t.Fatal("expected silt after first import")
			}

			// same path, edited contents
			if err := os.WriteFile(file, []byte("lines\ntiles\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			if lookup("silt") {
				t.Error("expected silt to be gone after the file changed")
			}
			if !lookup("tiles") {
				t.Error("expected tiles after the file changed")
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, _, err := Open(ctx, config.Dictionary{Backend: "redis", Lang: "en"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend got %v", err)
	}
	if _, _, err := Open(ctx, config.Dictionary{Backend: "memory", Lang: "??"}); err == nil {
		t.Error("expected error for malformed lang")
	}
	if _, _, err := Open(ctx, config.Dictionary{Backend: "memory", Lang: "en", File: "/does/not/exist"}); err == nil {
		t.Error("expected error for missing dictionary file")
	}
}
