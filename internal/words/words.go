// internal/words/words.go
//
// Root word list management.
//
// Responsibilities:
//   - Load the newline-separated root word list from a file or the bundled asset.
//   - Pick a root uniformly at random (with replacement) for a new round.
//   - Pick the deterministic "root of the day".
//
// Loading behavior:
//   1. If WORDS_START_FILE is set, the list is read from that path.
//   2. Otherwise the embedded assets/start.txt is used.
//   A list that cannot be read is reported to the caller, who is expected to
//   fall back to Embedded(); an empty list still yields DefaultRoot.
package words

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fastrand"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/daily"
)

// DefaultRoot is used whenever no root can be picked from a list.
const DefaultRoot = "apple"

var ErrEmptyList = errors.New("words: root list is empty")

// List is an immutable set of candidate root words.
type List struct {
	roots  []string
	source string
}

// Load reads the list at path, or the embedded list when path is empty.
func Load(path string) (*List, error) {
	if path == "" {
		return Embedded()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open root list: %w", err)
	}
	defer f.Close()

	roots, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read root list %s: %w", path, err)
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyList)
	}
	return &List{roots: roots, source: path}, nil
}

// Embedded returns the bundled start.txt list.
func Embedded() (*List, error) {
	roots, err := assets.StartWords()
	if err != nil {
		return nil, fmt.Errorf("read bundled root list: %w", err)
	}
	return &List{roots: roots, source: "embedded:start.txt"}, nil
}

// NewList builds a list from words already in memory (tests, tools).
func NewList(roots ...string) *List {
	return &List{roots: append([]string(nil), roots...), source: "inline"}
}

// Random returns a uniformly chosen root, or DefaultRoot for an empty list.
func (l *List) Random() string {
	if l == nil || len(l.roots) == 0 {
		return DefaultRoot
	}
	return l.roots[fastrand.Uint32n(uint32(len(l.roots)))]
}

// Daily returns the root of the day for t, stable for a given salt.
func (l *List) Daily(t time.Time, salt string) string {
	if l == nil || len(l.roots) == 0 {
		return DefaultRoot
	}
	return l.roots[daily.WordIndex(t, salt, len(l.roots))]
}

// Contains reports whether w is one of the roots.
func (l *List) Contains(w string) bool {
	if l == nil {
		return false
	}
	for _, r := range l.roots {
		if r == w {
			return true
		}
	}
	return false
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.roots)
}

// Source names where the list came from.
func (l *List) Source() string {
	if l == nil {
		return ""
	}
	return l.source
}
