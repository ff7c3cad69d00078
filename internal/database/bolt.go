package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// OpenBolt opens a bbolt file, creating its directory when needed.
func OpenBolt(ctx context.Context, path string) (*bolt.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("opening bolt db")

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("creating connection DB: %w", err)
	}
	return db, nil
}
