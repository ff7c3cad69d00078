// internal/dictionary/oracle.go
//
// Dictionary oracle: decides whether a word is a real, correctly spelled word
// in a given language.
//
// Backends:
//   - memory: in-process sets, seeded from a word list.
//   - sqlite: lexicon table in a SQLite file.
//   - bolt:   one bbolt bucket per language.
//
// Any backend can be wrapped in Cached to memoize verdicts.
package dictionary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/words"
)

// Oracle reports whether word is a correctly spelled word in lang.
// A backend failure is an error, never a false verdict.
type Oracle interface {
	IsValidWord(ctx context.Context, word, lang string) (bool, error)
}

var ErrUnknownBackend = errors.New("dictionary: unknown backend")

const embeddedSource = "embedded:lexicon_en.txt"

// Open builds the oracle described by cfg and seeds it from cfg.File (or the
// bundled lexicon). The returned close func releases backend resources.
func Open(ctx context.Context, cfg config.Dictionary) (Oracle, func() error, error) {
	lang, err := words.ParseLang(cfg.Lang)
	if err != nil {
		return nil, nil, fmt.Errorf("dictionary lang %q: %w", cfg.Lang, err)
	}
	list, source, err := loadList(cfg.File)
	if err != nil {
		return nil, nil, err
	}

	var (
		oracle Oracle
		closer = func() error { return nil }
	)
	switch cfg.Backend {
	case "", "memory":
		m := NewMemory()
		m.Add(lang.String(), list...)
		oracle = m

	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		if err := s.Import(ctx, lang.String(), source, list); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		oracle, closer = s, s.Close

	case "bolt":
		b, err := OpenBolt(ctx, cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		if err := b.Import(ctx, lang.String(), list); err != nil {
			_ = b.Close()
			return nil, nil, err
		}
		oracle, closer = b, b.Close

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	log.Info().
		Str("backend", cfg.Backend).
		Str("lang", lang.String()).
		Str("source", source).
		Int("words", len(list)).
		Msg("dictionary ready")

	if cfg.CacheSize > 0 {
		c, err := NewCached(oracle, cfg.CacheSize)
		if err != nil {
			_ = closer()
			return nil, nil, err
		}
		oracle = c
	}
	return oracle, closer, nil
}

func loadList(path string) ([]string, string, error) {
	if path == "" {
		list, err := assets.Lexicon()
		if err != nil {
			return nil, "", fmt.Errorf("read bundled lexicon: %w", err)
		}
		return list, embeddedSource, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open dictionary file: %w", err)
	}
	defer f.Close()
	list, err := assets.ReadLines(f)
	if err != nil {
		return nil, "", fmt.Errorf("read dictionary file %s: %w", path, err)
	}
	return list, path, nil
}

// key normalizes the lookup pair shared by all backends.
func key(word, lang string) (string, string, error) {
	tag, err := words.ParseLang(lang)
	if err != nil {
		return "", "", fmt.Errorf("dictionary lang %q: %w", lang, err)
	}
	return words.Normalize(word, tag), tag.String(), nil
}

// digest identifies a word list by content, so an edited file at the same
// path is imported again.
func digest(list []string) string {
	h := sha256.New()
	for _, w := range list {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
