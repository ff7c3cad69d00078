// internal/game/engine.go
//
// Round engine.
// Responsibilities:
//   - Create rounds around a root word.
//   - Validate candidates: originality, spellability, dictionary reality.
//   - Track accepted words (most recent first); score is their count.
//   - Restart a round with a new root.
//
// Validation order is fixed and the first failing check wins. The round is
// only mutated after every check has passed.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/words"
)

// Player-facing rejection texts.
const (
	TitleOriginality   = "word used already"
	MessageOriginality = "Be more original!"

	TitleSpellability   = "word not possible"
	MessageSpellability = "You cant spell that word from %s !!"

	TitleDictionary   = "word not recognised"
	MessageDictionary = "give meaningful full word don't make it up"
)

// New starts a round around root. An empty root falls back to words.DefaultRoot.
func New(root string, lang language.Tag, dict Dictionary) *Round {
	r := &Round{
		id:   uuid.NewString(),
		lang: lang,
		dict: dict,
	}
	r.reset(root)
	return r
}

// Restart picks up a new root and clears accepted words. The round keeps its ID.
func (r *Round) Restart(root string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset(root)
}

func (r *Round) reset(root string) {
	root = words.Normalize(root, r.lang)
	if root == "" {
		root = words.DefaultRoot
	}
	r.root = root
	r.words = []string{}
	r.started = time.Now()
}

// Submit validates a raw candidate against the round.
//
// Empty input (after normalization) is ignored without a notification.
// Rejections are reported in the Outcome, not as an error; an error means the
// dictionary could not answer, and the round is left untouched.
func (r *Round) Submit(ctx context.Context, raw string) (Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := words.Normalize(raw, r.lang)
	if w == "" {
		return Outcome{Status: StatusIgnored, Reason: ReasonEmpty, Score: len(r.words)}, nil
	}

	if !isOriginal(r.words, w) {
		return r.reject(ReasonOriginality, w), nil
	}
	if !isPossible(r.root, w) {
		return r.reject(ReasonSpellability, w), nil
	}
	ok, err := r.dict.IsValidWord(ctx, w, r.lang.String())
	if err != nil {
		return Outcome{}, fmt.Errorf("dictionary lookup %q: %w", w, err)
	}
	if !ok {
		return r.reject(ReasonDictionary, w), nil
	}

	r.words = append([]string{w}, r.words...)
	return Outcome{Status: StatusAccepted, Word: w, Score: len(r.words)}, nil
}

// reject builds the rejection outcome for reason.
func (r *Round) reject(reason Reason, w string) Outcome {
	o := Outcome{Status: StatusRejected, Reason: reason, Word: w, Score: len(r.words)}
	switch reason {
	case ReasonOriginality:
		o.Title, o.Message = TitleOriginality, MessageOriginality
	case ReasonSpellability:
		o.Title, o.Message = TitleSpellability, fmt.Sprintf(MessageSpellability, r.root)
	case ReasonDictionary:
		o.Title, o.Message = TitleDictionary, MessageDictionary
	}
	return o
}

// isOriginal reports whether w has not been accepted yet.
func isOriginal(accepted []string, w string) bool {
	for _, a := range accepted {
		if a == w {
			return false
		}
	}
	return true
}

// isPossible reports whether w can be spelled from the letters of root, each
// letter of root used at most once.
//
// A letter is a grapheme cluster, so a base letter and its combining marks
// count as one, and repeated letters in w need the same repetition in root
// ("tent" needs two t's).
func isPossible(root, w string) bool {
	counts := make(map[string]int, len(root))
	g := uniseg.NewGraphemes(root)
	for g.Next() {
		counts[g.Str()]++
	}
	g = uniseg.NewGraphemes(w)
	for g.Next() {
		c := g.Str()
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// ------------------------------- accessors ---------------------------------

func (r *Round) ID() string { return r.id }

func (r *Round) Lang() language.Tag { return r.lang }

func (r *Round) Root() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}

// Words returns a copy of the accepted words, most recent first.
func (r *Round) Words() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.words...)
}

// Contains reports whether w, once normalized, was already accepted.
func (r *Round) Contains(w string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !isOriginal(r.words, words.Normalize(w, r.lang))
}

// Entries is Words annotated with letter counts.
func (r *Round) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.words))
	for i, w := range r.words {
		out[i] = Entry{Word: w, Letters: uniseg.GraphemeClusterCount(w)}
	}
	return out
}

// Score is the number of accepted words.
func (r *Round) Score() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.words)
}

// Started is when the current root was picked.
func (r *Round) Started() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}
