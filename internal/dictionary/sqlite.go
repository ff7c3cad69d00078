package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/database"
)

var _ Oracle = (*SQLite)(nil)

// SQLite keeps the lexicon in a lexicon(lang, word) table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens path and applies the embedded migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon db: %w", err)
	}
	if err := database.Migrate(ctx, db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate lexicon db: %w", err)
	}
	return &SQLite{db: db}, nil
}

// NewSQLite wraps an already migrated database.
func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

func (s *SQLite) Close() error { return s.db.Close() }

// Import makes list the lexicon for lang. The last import per language is
// recorded with the digest of its list: the same list again is skipped, a
// changed one replaces every word of the language.
func (s *SQLite) Import(ctx context.Context, lang, source string, list []string) error {
	_, lang, err := key("", lang)
	if err != nil {
		return err
	}
	sum := digest(list)

	var have string
	err = s.db.QueryRowContext(ctx,
		`SELECT digest FROM lexicon_sources WHERE lang=?`, lang,
	).Scan(&have)
	switch {
	case err == nil && have == sum:
		log.Debug().Str("lang", lang).Str("source", source).Msg("lexicon already imported")
		return nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("query lexicon_sources: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lexicon WHERE lang=?`, lang); err != nil {
		return fmt.Errorf("clear lexicon %s: %w", lang, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO lexicon (lang, word) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare lexicon insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, w := range list {
		word, _, err := key(w, lang)
		if err != nil {
			return err
		}
		if word == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, lang, word); err != nil {
			return fmt.Errorf("insert %q: %w", word, err)
		}
		n++
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO lexicon_sources (lang, source, digest, words, imported_at) VALUES (?,?,?,?,?)`,
		lang, source, sum, n, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record lexicon source: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Str("lang", lang).Str("source", source).Int("words", n).Msg("lexicon imported")
	return nil
}

func (s *SQLite) IsValidWord(ctx context.Context, word, lang string) (bool, error) {
	word, lang, err := key(word, lang)
	if err != nil {
		return false, err
	}
	var one int
	err = s.db.QueryRowContext(ctx,
		`SELECT 1 FROM lexicon WHERE lang=? AND word=?`, lang, word,
	).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("lexicon lookup: %w", err)
	}
	return true, nil
}
