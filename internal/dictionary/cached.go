package dictionary

import (
	"context"

	"github.com/robalobadob/wordscramble/internal/cache"
)

var _ Oracle = (*Cached)(nil)

// Cached memoizes verdicts of another oracle. Errors are not cached.
type Cached struct {
	next  Oracle
	cache cache.Cache
}

func NewCached(next Oracle, size int) (*Cached, error) {
	c, err := cache.NewLRU(size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: c}, nil
}

func (c *Cached) IsValidWord(ctx context.Context, word, lang string) (bool, error) {
	w, l, err := key(word, lang)
	if err != nil {
		return false, err
	}
	k := l + "\x00" + w
	if v, ok := c.cache.Get(k); ok {
		return v.(bool), nil
	}
	ok, err := c.next.IsValidWord(ctx, w, l)
	if err != nil {
		return false, err
	}
	c.cache.Add(k, ok)
	return ok, nil
}
