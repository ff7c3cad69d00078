package dictionary

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"

	"github.com/robalobadob/wordscramble/internal/database"
)

var _ Oracle = (*Bolt)(nil)

// Bolt stores one bucket per language; keys are words, values are empty.
type Bolt struct {
	db *bolt.DB
}

func OpenBolt(ctx context.Context, path string) (*Bolt, error) {
	db, err := database.OpenBolt(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func NewBolt(db *bolt.DB) *Bolt { return &Bolt{db: db} }

func (b *Bolt) Close() error { return b.db.Close() }

// sourcesBucket maps a language to the digest of its last imported list.
var sourcesBucket = []byte("_sources")

// Import makes list the word set for lang. An unchanged list is skipped; a
// changed one replaces the language bucket.
func (b *Bolt) Import(ctx context.Context, lang string, list []string) error {
	_, l, err := key("", lang)
	if err != nil {
		return err
	}
	sum := []byte(digest(list))

	return b.db.Update(func(tx *bolt.Tx) error {
		sources, err := tx.CreateBucketIfNotExists(sourcesBucket)
		if err != nil {
			return fmt.Errorf("create bucket %s: %w", sourcesBucket, err)
		}
		if bytes.Equal(sources.Get([]byte(l)), sum) {
			log.Debug().Str("lang", l).Msg("lexicon already imported")
			return nil
		}

		if tx.Bucket([]byte(l)) != nil {
			if err := tx.DeleteBucket([]byte(l)); err != nil {
				return fmt.Errorf("drop bucket %s: %w", l, err)
			}
		}
		bucket, err := tx.CreateBucket([]byte(l))
		if err != nil {
			return fmt.Errorf("create bucket %s: %w", l, err)
		}
		for i, w := range list {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			word, _, _ := key(w, l)
			if word == "" {
				continue
			}
			if err := bucket.Put([]byte(word), []byte{}); err != nil {
				return fmt.Errorf("put %q: %w", word, err)
			}
		}
		return sources.Put([]byte(l), sum)
	})
}

func (b *Bolt) IsValidWord(_ context.Context, word, lang string) (bool, error) {
	word, lang, err := key(word, lang)
	if err != nil {
		return false, err
	}
	found := false
	err = b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(lang))
		if bucket == nil {
			return nil
		}
		found = bucket.Get([]byte(word)) != nil
		return nil
	})
	return found, err
}
