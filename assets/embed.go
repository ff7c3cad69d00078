// assets/embed.go
//
// Bundled game data:
//   - start.txt:       root words offered at round start.
//   - lexicon_en.txt:  English lexicon seeding the dictionary oracle.
//   - sql/*.sql:       SQLite migrations for the lexicon backend.
//
// Lists are newline-separated; blank lines and "#" comments are skipped and
// every entry is lowercased.
package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"strings"
)

//go:embed start.txt lexicon_en.txt sql/*.sql
var FS embed.FS

// ReadLines parses a word list from r.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// StartWords returns the bundled root word list.
func StartWords() ([]string, error) {
	return readLines("start.txt")
}

// Lexicon returns the bundled English lexicon.
func Lexicon() ([]string, error) {
	return readLines("lexicon_en.txt")
}

// Migrations exposes the embedded sql directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// the directory is part of the embed pattern, so Sub cannot fail
		panic(err)
	}
	return sub
}
