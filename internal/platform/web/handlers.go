package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vovakirdan/rgb-guess/internal/games/colors"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

const (
	errNotFound   = "not_found"
	errBadRequest = "bad_request"
)

// difficultyReq is the body of POST /api/games and POST /api/games/{id}/difficulty.
type difficultyReq struct {
	Difficulty string `json:"difficulty"`
}

// gameRes is returned by every game endpoint.
type gameRes struct {
	ID      string          `json:"id"`
	Outcome string          `json:"outcome,omitempty"` // Set by tile clicks
	State   colors.Snapshot `json:"state"`
}

// handleCreate starts a new session. An empty body starts on Hard.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	d := colors.Hard
	var req difficultyReq
	// Chunked requests report ContentLength -1, so an empty body shows up as EOF.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, errBadRequest)
		return
	}
	if req.Difficulty != "" {
		parsed, err := colors.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest)
			return
		}
		d = parsed
	}

	sess := s.sessions.Create(d)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.logger.Info("session created", "id", sess.id, "difficulty", d, "live", s.sessions.Len())
	writeJSON(w, http.StatusCreated, gameRes{ID: sess.id.String(), State: sess.snapshot()})
}

// handleGet returns the current state of a session.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	writeJSON(w, http.StatusOK, gameRes{ID: sess.id.String(), State: sess.snapshot()})
}

// handleDifficulty switches the difficulty and starts a new round.
func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errBadRequest)
		return
	}
	d, err := colors.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, errBadRequest)
		return
	}

	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	sess.ctrl.SetDifficulty(d)
	writeJSON(w, http.StatusOK, gameRes{ID: sess.id.String(), State: sess.snapshot()})
}

// handleNewColors starts a new round on the current difficulty.
func (s *Server) handleNewColors(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	sess.ctrl.StartGame()
	writeJSON(w, http.StatusOK, gameRes{ID: sess.id.String(), State: sess.snapshot()})
}

// handleTile judges a click on one tile.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errBadRequest)
		return
	}

	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	defer sess.mu.Unlock()

	outcome := sess.ctrl.HandleTileClick(index)
	if outcome == colors.OutcomeWin {
		s.saveWin(sess)
	}

	writeJSON(w, http.StatusOK, gameRes{
		ID:      sess.id.String(),
		Outcome: outcome.String(),
		State:   sess.snapshot(),
	})
}

// lookup resolves {id} to a locked session, writing a 404 when it is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, errNotFound)
		return nil, false
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errNotFound)
		return nil, false
	}
	return sess, true
}

// saveWin records the current round once. The caller holds sess.mu.
func (s *Server) saveWin(sess *session) {
	round := sess.ctrl.Round()
	if s.store == nil || sess.saved == round.Seq {
		return
	}
	sess.saved = round.Seq

	_, err := s.store.SaveRound(storage.RoundRecord{
		GameID:     colors.IDFor(round.Difficulty),
		Difficulty: round.Difficulty.String(),
		Picked:     round.Picked.String(),
		Misses:     sess.ctrl.Misses(),
		Points:     sess.ctrl.RoundPoints(),
		Source:     Source,
	})
	if err != nil {
		s.logger.Warn("could not save round", "id", sess.id, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
