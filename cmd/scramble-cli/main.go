// cmd/scramble-cli
//
// Terminal front end: one round at a time on stdin/stdout.
// A line is a candidate word; ":restart" picks a new root, ":quit" exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/logging"
	"github.com/robalobadob/wordscramble/internal/shutdown"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	// keep the board readable: only warnings and up go to stderr
	if cfg.LogLevel == "info" || cfg.LogLevel == "debug" {
		cfg.LogLevel = "warn"
	}
	logging.Setup(cfg.LogLevel, true)

	ctx, done := shutdown.New()
	defer done()

	if err := realMain(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("scramble-cli")
	}
}

func realMain(ctx context.Context, cfg *config.Config) error {
	roots := loadRoots(cfg.Words.StartFile)

	lang, err := words.ParseLang(cfg.Dictionary.Lang)
	if err != nil {
		return fmt.Errorf("dictionary lang: %w", err)
	}
	dict, closeDict, err := dictionary.Open(ctx, cfg.Dictionary)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer func() {
		if err := closeDict(); err != nil {
			log.Warn().Err(err).Msg("close dictionary")
		}
	}()

	p := &player{
		round: game.New(roots.Random(), lang, dict),
		roots: roots,
		out:   os.Stdout,
	}
	return p.play(ctx, os.Stdin)
}

// loadRoots falls back to the bundled list, and then to words.DefaultRoot,
// with a warning for each step.
func loadRoots(path string) *words.List {
	roots, err := words.Load(path)
	if err == nil {
		return roots
	}
	log.Warn().Err(err).Str("path", path).Msg("using bundled root words")
	if roots, err = words.Embedded(); err != nil {
		log.Warn().Err(err).Str("fallback", words.DefaultRoot).Msg("bundled root words unavailable")
		return words.NewList()
	}
	return roots
}
