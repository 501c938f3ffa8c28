// Package httpserver exposes the game over a small JSON API.
//
// Routes:
//   - POST /games                  start a new session
//   - GET  /games/{id}             current state
//   - POST /games/{id}/words       submit a word
//   - POST /games/{id}/restart     new root word, score reset
//   - DELETE /games/{id}           end a session
//   - GET  /health
//
// Every session is an independent single-player game.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordscramble/internal/game"
	"github.com/samdwyer/wordscramble/internal/store"
	"github.com/samdwyer/wordscramble/internal/telemetry"
)

// maxBodyBytes caps request bodies; a word submission is a few bytes of JSON.
const maxBodyBytes = 4 << 10

// GameFactory builds a fresh game for each new session.
type GameFactory func() *game.Game

// Server bundles router, session store and game factory.
type Server struct {
	r       *chi.Mux
	store   store.Store
	newGame GameFactory
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, newGame GameFactory) *Server {
	s := &Server{r: chi.NewRouter(), store: st, newGame: newGame}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(requestLogger)
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleNewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Delete("/", s.handleDeleteGame)
			r.Post("/words", s.handleAddWord)
			r.Post("/restart", s.handleRestart)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request with zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ payloads -----------------------------------

type gameRes struct {
	ID        string   `json:"id"`
	RootWord  string   `json:"rootWord"`
	Score     int      `json:"score"`
	UsedWords []string `json:"usedWords"`
	Outcome   string   `json:"outcome,omitempty"`
}

type addWordReq struct {
	Word string `json:"word"`
}

type rejectionBody struct {
	Reason  string `json:"reason"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type rejectionRes struct {
	Error rejectionBody `json:"error"`
}

func newGameRes(id string, snap game.Snapshot) gameRes {
	return gameRes{
		ID:        id,
		RootWord:  snap.RootWord,
		Score:     snap.Score,
		UsedWords: snap.UsedWords,
	}
}

// ------------------------------ handlers -----------------------------------

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Create(r.Context(), s.newGame())
	if err != nil {
		log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	var res gameRes
	sess.Do(func(g *game.Game) { res = newGameRes(sess.ID, g.Snapshot()) })
	log.Info().Str("session", sess.ID).Str("root_word", res.RootWord).Msg("session started")
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var res gameRes
	sess.Do(func(g *game.Game) { res = newGameRes(sess.ID, g.Snapshot()) })
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req addWordReq
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	ctx, span := telemetry.Tracer("http").Start(r.Context(), "http.add_word")
	defer span.End()
	span.SetAttributes(attribute.String("session", sess.ID))

	var (
		outcome game.Outcome
		err     error
		res     gameRes
	)
	sess.Do(func(g *game.Game) {
		outcome, err = g.AddNewWord(ctx, req.Word)
		res = newGameRes(sess.ID, g.Snapshot())
	})

	if err != nil {
		var rej *game.RejectionError
		if errors.As(err, &rej) {
			writeJSON(w, http.StatusUnprocessableEntity, rejectionRes{Error: rejectionBody{
				Reason:  rej.Reason.String(),
				Title:   rej.Title,
				Message: rej.Message,
			}})
			return
		}
		log.Error().Err(err).Str("session", sess.ID).Msg("add word")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}

	res.Outcome = outcome.String()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("delete session")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	log.Info().Str("session", sess.ID).Msg("session ended")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var res gameRes
	sess.Do(func(g *game.Game) {
		g.StartGame(r.Context())
		res = newGameRes(sess.ID, g.Snapshot())
	})
	writeJSON(w, http.StatusOK, res)
}

// session looks up the {id} URL parameter, writing a 404 when it is unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
