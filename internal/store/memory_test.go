package store

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
)

type noDict struct{}

func (noDict) IsValidWord(context.Context, string, string) (bool, error) { return false, nil }

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemoryStore(8)
	if err != nil {
		t.Fatal(err)
	}

	r := game.New("silent", language.English, noDict{})
	if err := s.Save(ctx, r); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, r.ID())
	if err != nil {
		t.Fatal(err)
	}
	if got != r {
		t.Error("expected the same round back")
	}

	if err := s.Delete(ctx, r.ID()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, r.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound got %v", err)
	}
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Errorf("deleting a missing round should not fail: %v", err)
	}
}

func TestSaveNil(t *testing.T) {
	s, err := NewMemoryStore(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), nil); err == nil {
		t.Error("expected error for nil round")
	}
}

func TestStoreIsBounded(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemoryStore(2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := s.Save(ctx, game.New("silent", language.English, noDict{})); err != nil {
			t.Fatal(err)
		}
	}
	if s.Len() > 2 {
		t.Errorf("expected at most 2 rounds got %d", s.Len())
	}
}

func TestNewMemoryStoreRejectsZeroSize(t *testing.T) {
	if _, err := NewMemoryStore(0); err == nil {
		t.Error("expected error for size 0")
	}
}
