package web

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/games/colors"
)

// session is one browser game. The controller clock follows wall time
// between requests.
type session struct {
	mu    sync.Mutex
	id    uuid.UUID
	board *colors.Board
	ctrl  *colors.Controller
	last  time.Time
	saved uint64 // Seq of the last round written to the store
}

// sync advances the controller by the time elapsed since the last request.
func (s *session) sync(now time.Time) {
	if dt := now.Sub(s.last); dt > 0 {
		s.ctrl.Advance(dt)
	}
	s.last = now
}

func (s *session) snapshot() colors.Snapshot {
	return colors.TakeSnapshot(s.ctrl, s.board)
}

// sessionStore holds the live games keyed by id.
type sessionStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*session

	cfg  config.ColorsConfig
	ttl  time.Duration
	now  func() time.Time
	seed func() int64
}

// newSessionStore creates an empty session set. Sessions idle for longer
// than ttl are removed by Expire.
func newSessionStore(cfg config.ColorsConfig, ttl time.Duration, now func() time.Time, seed func() int64) *sessionStore {
	if now == nil {
		now = time.Now
	}
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &sessionStore{
		games: make(map[uuid.UUID]*session),
		cfg:   cfg,
		ttl:   ttl,
		now:   now,
		seed:  seed,
	}
}

// Create starts a new game on d.
func (ss *sessionStore) Create(d colors.Difficulty) *session {
	board := colors.NewBoard(ss.cfg.Board.Tiles)
	rng := rand.New(rand.NewSource(ss.seed()))

	s := &session{
		id:    uuid.New(),
		board: board,
		ctrl:  colors.NewController(board, rng, colors.OptionsFromConfig(ss.cfg)),
		last:  ss.now(),
	}
	s.ctrl.SetDifficulty(d)

	ss.mu.Lock()
	ss.games[s.id] = s
	ss.mu.Unlock()
	return s
}

// Get looks up a session and brings its clock up to date.
// The returned session is locked; callers must unlock it.
func (ss *sessionStore) Get(id uuid.UUID) (*session, bool) {
	ss.mu.Lock()
	s, ok := ss.games[id]
	ss.mu.Unlock()
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	s.sync(ss.now())
	return s, true
}

// Len returns the number of live sessions.
func (ss *sessionStore) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.games)
}

// Expire removes sessions idle for longer than the ttl and returns how many went.
func (ss *sessionStore) Expire() int {
	if ss.ttl <= 0 {
		return 0
	}
	cutoff := ss.now().Add(-ss.ttl)

	ss.mu.Lock()
	defer ss.mu.Unlock()

	removed := 0
	for id, s := range ss.games {
		s.mu.Lock()
		idle := s.last.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(ss.games, id)
			removed++
		}
	}
	return removed
}

// RunJanitor calls Expire every interval until ctx is done.
func (ss *sessionStore) RunJanitor(ctx context.Context, interval time.Duration, onExpire func(n int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := ss.Expire(); n > 0 && onExpire != nil {
				onExpire(n)
			}
		}
	}
}
