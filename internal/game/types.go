// internal/game/types.go
//
// Core type definitions for a word scramble round.
// Defines:
//   - Status/Reason: what happened to a submitted candidate.
//   - Outcome:       the result handed back to the presentation layer.
//   - Entry:         an accepted word with its letter count.
//   - Round:         state of a single round.

package game

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// Status is the coarse result of a submission.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusIgnored  Status = "ignored" // empty input, nothing to show
)

// Reason says which check a candidate failed.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonEmpty        Reason = "empty"
	ReasonOriginality  Reason = "originality"
	ReasonSpellability Reason = "spellability"
	ReasonDictionary   Reason = "dictionary"
)

// Outcome is the result of Round.Submit.
// Title and Message are shown to the player verbatim on rejection.
type Outcome struct {
	Status  Status `json:"status"`
	Reason  Reason `json:"reason,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	Word    string `json:"word,omitempty"` // normalized candidate
	Score   int    `json:"score"`
}

// Accepted reports whether the candidate was added to the round.
func (o Outcome) Accepted() bool { return o.Status == StatusAccepted }

// Entry is an accepted word as listed to the player.
type Entry struct {
	Word    string `json:"word"`
	Letters int    `json:"letters"`
}

// Dictionary decides whether a word is real in a language.
// dictionary.Oracle satisfies it.
type Dictionary interface {
	IsValidWord(ctx context.Context, word, lang string) (bool, error)
}

// Round holds the state of one round. It is safe for concurrent use;
// submissions on a round are serialized.
type Round struct {
	mu      sync.Mutex
	id      string       // uuid, stable across restarts
	root    string       // lowercase root word, fixed until Restart
	lang    language.Tag // language for case mapping and dictionary lookups
	words   []string     // accepted words, most recent first
	started time.Time
	dict    Dictionary
}
