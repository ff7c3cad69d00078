// internal/httpserver/server.go
//
// HTTP server wiring for the word scramble backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts, JSON, CORS).
//   - Public endpoints: "/", "/health", "/debug/words", POST /rounds.
//   - Round endpoints (round token required): view, submit a word, restart, delete.
//
// Notes:
//   - POST /rounds hands out a signed round token; every /rounds/{id} call must
//     present it as a bearer token or cookie.
//   - Rejected words answer 422 with the player-facing title/message.
//   - Empty submissions answer 200 with status "ignored" and change nothing.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

// Options carries the transport settings taken from config.
type Options struct {
	Lang           language.Tag
	ClientOrigin   string
	RequestTimeout time.Duration
	TokenSecret    string
	TokenTTL       time.Duration
	CookieName     string
	Production     bool
	DailySalt      string
}

// Server bundles the router with the round store, dictionary and root list.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  game.Dictionary
	roots *words.List
	opts  Options
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict game.Dictionary, roots *words.List, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.CookieName == "" {
		opts.CookieName = "scramble_round"
	}
	if opts.Lang == language.Und {
		opts.Lang = language.English
	}
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, roots: roots, opts: opts, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordscramble",
			"endpoints": []string{
				"/health", "POST /rounds", "GET /rounds/{id}",
				"POST /rounds/{id}/words", "POST /rounds/{id}/restart",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"roots":  s.roots.Len(),
			"source": s.roots.Source(),
			"rounds": s.store.Len(),
		})
	})

	// --- rounds ---
	s.r.Post("/rounds", s.handleNewRound)
	s.r.Route("/rounds/{id}", func(r chi.Router) {
		r.Use(s.requireRound)
		r.Get("/", s.handleGetRound)
		r.Delete("/", s.handleDeleteRound)
		r.Post("/words", s.handleSubmit)
		r.Post("/restart", s.handleRestart)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (http.Server, tests).
func (s *Server) Handler() http.Handler { return s.r }

// ------------------------------ ROUNDS -------------------------------------

// newRoundReq is the POST /rounds payload. Both fields are optional.
type newRoundReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
	Root string `json:"root"` // fixed root word
}

type newRoundRes struct {
	RoundID   string    `json:"roundId"`
	RootWord  string    `json:"rootWord"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Score     int       `json:"score"`
	// seconds until the daily root changes; daily mode only
	NextRootIn int `json:"nextRootIn,omitempty"`
}

// roundView is what GET /rounds/{id} and restart return.
type roundView struct {
	RoundID    string       `json:"roundId"`
	RootWord   string       `json:"rootWord"`
	Lang       string       `json:"lang"`
	Words      []game.Entry `json:"words"`
	Score      int          `json:"score"`
	StartedAt  time.Time    `json:"startedAt"`
	NextRootIn int          `json:"nextRootIn,omitempty"`
}

func viewOf(rd *game.Round) roundView {
	return roundView{
		RoundID:   rd.ID(),
		RootWord:  rd.Root(),
		Lang:      rd.Lang().String(),
		Words:     rd.Entries(),
		Score:     rd.Score(),
		StartedAt: rd.Started(),
	}
}

// pickRoot chooses the root for a new round or a restart.
func (s *Server) pickRoot(mode, fixed string) (string, error) {
	switch {
	case fixed != "":
		return fixed, nil
	case mode == "" || mode == "random":
		return s.roots.Random(), nil
	case mode == "daily":
		return s.roots.Daily(s.now(), s.opts.DailySalt), nil
	}
	return "", errors.New("unknown mode")
}

// nextRootIn is the seconds left before a daily root rolls over, 0 for other modes.
func (s *Server) nextRootIn(mode string) int {
	if mode != "daily" {
		return 0
	}
	return int(daily.Until(s.now()).Seconds())
}

// handleNewRound creates a round, stores it and returns its token.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	root, err := s.pickRoot(req.Mode, req.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}

	rd := game.New(root, s.opts.Lang, s.dict)
	if err := s.store.Save(r.Context(), rd); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signToken(rd.ID())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setRoundCookie(w, tok, exp)

	hlog.FromRequest(r).Info().Str("round", rd.ID()).Str("root", rd.Root()).Msg("round started")
	writeJSON(w, http.StatusCreated, newRoundRes{
		RoundID:    rd.ID(),
		RootWord:   rd.Root(),
		Token:      tok,
		ExpiresAt:  exp,
		Score:      rd.Score(),
		NextRootIn: s.nextRootIn(req.Mode),
	})
}

func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(roundFrom(r.Context())))
}

func (s *Server) handleDeleteRound(w http.ResponseWriter, r *http.Request) {
	rd := roundFrom(r.Context())
	if err := s.store.Delete(r.Context(), rd.ID()); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	s.clearRoundCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// submitReq is the POST /rounds/{id}/words payload.
type submitReq struct {
	Word string `json:"word"`
}

// handleSubmit runs a candidate through the round's validation pipeline.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	rd := roundFrom(r.Context())

	out, err := rd.Submit(r.Context(), req.Word)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("round", rd.ID()).Msg("submit")
		writeError(w, http.StatusBadGateway, "dictionary_unavailable")
		return
	}

	logger := hlog.FromRequest(r)
	switch out.Status {
	case game.StatusAccepted:
		logger.Debug().Str("round", rd.ID()).Str("word", out.Word).Int("score", out.Score).Msg("word accepted")
		writeJSON(w, http.StatusOK, out)
	case game.StatusRejected:
		logger.Debug().Str("round", rd.ID()).Str("word", out.Word).Str("reason", string(out.Reason)).Msg("word rejected")
		writeJSON(w, http.StatusUnprocessableEntity, out)
	default:
		writeJSON(w, http.StatusOK, out)
	}
}

// restartReq is the optional POST /rounds/{id}/restart payload.
type restartReq struct {
	Mode string `json:"mode"`
}

// handleRestart picks a new root and clears the round's words.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req restartReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	root, err := s.pickRoot(req.Mode, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}
	rd := roundFrom(r.Context())
	rd.Restart(root)
	hlog.FromRequest(r).Info().Str("round", rd.ID()).Str("root", rd.Root()).Msg("round restarted")
	view := viewOf(rd)
	view.NextRootIn = s.nextRootIn(req.Mode)
	writeJSON(w, http.StatusOK, view)
}

// ------------------------------- helpers -----------------------------------

type roundCtxKey struct{}

func withRound(ctx context.Context, rd *game.Round) context.Context {
	return context.WithValue(ctx, roundCtxKey{}, rd)
}

// roundFrom returns the round loaded by requireRound.
func roundFrom(ctx context.Context) *game.Round {
	rd, _ := ctx.Value(roundCtxKey{}).(*game.Round)
	return rd
}

// decodeOptional decodes a JSON body into v; an empty body leaves v untouched.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
