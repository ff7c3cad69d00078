package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/logging"
	"github.com/robalobadob/wordscramble/internal/shutdown"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, done := shutdown.New()
	defer done()

	if err := realMain(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
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

	rounds, err := store.NewMemoryStore(cfg.RoundCacheSize)
	if err != nil {
		return fmt.Errorf("round store: %w", err)
	}

	srv := httpserver.New(rounds, dict, roots, httpserver.Options{
		Lang:           lang,
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
		TokenSecret:    cfg.TokenSecret,
		TokenTTL:       cfg.TokenTTL,
		CookieName:     cfg.CookieName,
		Production:     cfg.Production,
		DailySalt:      cfg.DailySalt,
	})
	httpSrv := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Handler()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting wordscramble server")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})
	return g.Wait()
}

// loadRoots reads the configured root list. A list that cannot be read is
// logged and replaced by the bundled one; the game never starts without roots.
func loadRoots(path string) *words.List {
	roots, err := words.Load(path)
	if err == nil {
		log.Info().Str("source", roots.Source()).Int("roots", roots.Len()).Msg("root words loaded")
		return roots
	}
	log.Error().Err(err).Str("path", path).Msg("failed to load root words, using bundled list")

	roots, err = words.Embedded()
	if err != nil {
		log.Error().Err(err).Str("fallback", words.DefaultRoot).Msg("bundled root words unavailable")
		return words.NewList()
	}
	return roots
}
