// internal/httpserver/token.go
//
// Round tokens: HS256 JWTs whose "rid" claim names the round they unlock.
// A client gets one from POST /rounds and sends it back as
// "Authorization: Bearer <token>" or in the round cookie.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordscramble/internal/store"
)

const roundClaim = "rid"

// signToken issues a token for round id, valid for TokenTTL.
func (s *Server) signToken(id string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.opts.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		roundClaim: id,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.TokenSecret))
	return ss, exp, err
}

// parseToken verifies tok and returns the round ID it carries.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.TokenSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", errors.New("invalid token")
	}
	id, _ := claims[roundClaim].(string)
	if id == "" {
		return "", errors.New("token carries no round")
	}
	return id, nil
}

// requireRound checks the round token against the {id} in the path and puts
// the round into the request context.
func (s *Server) requireRound(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := s.bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		rid, err := s.parseToken(tok)
		if err != nil || rid != id {
			hlog.FromRequest(r).Debug().Err(err).Str("round", id).Msg("round token rejected")
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		rd, err := s.store.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "round_not_found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "store_failed")
			return
		}
		next.ServeHTTP(w, r.WithContext(withRound(r.Context(), rd)))
	})
}

// bearerOrCookie extracts a token from the Authorization header or the round cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

func (s *Server) setRoundCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Production,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

func (s *Server) clearRoundCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Production,
		SameSite: s.sameSite(),
		MaxAge:   -1,
	})
}

// sameSite is None in production (cross-site client, Secure cookie) and Lax otherwise.
func (s *Server) sameSite() http.SameSite {
	if s.opts.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
