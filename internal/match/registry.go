package match

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"emittr/connect4/internal/game"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchFinished    = errors.New("match already finished")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrInvalidPlayers   = errors.New("invalid players")
)

type Player struct {
	Name  string     `json:"name"`
	Token game.Token `json:"token"`
}

// Setup describes a match to start. Players[0] moves first.
type Setup struct {
	Height  int
	Width   int
	Players [2]Player
}

// Validate rejects grids smaller than game.MinDimension and players that
// cannot be told apart.
func (s Setup) Validate() error {
	switch {
	case s.Height < game.MinDimension && s.Width < game.MinDimension:
		return fmt.Errorf("%w: height %d and width %d must be >= %d", ErrInvalidDimension, s.Height, s.Width, game.MinDimension)
	case s.Height < game.MinDimension:
		return fmt.Errorf("%w: height %d must be >= %d", ErrInvalidDimension, s.Height, game.MinDimension)
	case s.Width < game.MinDimension:
		return fmt.Errorf("%w: width %d must be >= %d", ErrInvalidDimension, s.Width, game.MinDimension)
	}
	p1, p2 := s.Players[0], s.Players[1]
	if p1.Name == "" || p2.Name == "" || p1.Name == p2.Name {
		return fmt.Errorf("%w: names must be distinct and non-empty", ErrInvalidPlayers)
	}
	if p1.Token == game.NoToken || p2.Token == game.NoToken || p1.Token == p2.Token {
		return fmt.Errorf("%w: tokens must be distinct and non-empty", ErrInvalidPlayers)
	}
	return nil
}

type match struct {
	id         string
	players    [2]Player
	grid       *game.Grid
	engine     *game.Engine
	status     string
	outcome    game.Outcome
	moves      []game.Position
	startedAt  time.Time
	endedAt    time.Time
	lastMoveAt time.Time
}

// MoveResult is what Play reports back to the driver.
type MoveResult struct {
	Row     int          `json:"row"`
	Column  int          `json:"column"`
	Outcome game.Outcome `json:"outcome"`
	Match   Snapshot     `json:"match"`
}

// Registry holds every match in the process. Each engine is single-threaded,
// so all calls into a match go through the registry lock.
type Registry struct {
	mu       sync.RWMutex
	matches  map[string]*match
	onFinish func(Snapshot)
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFinishHook registers fn to be called once per match when it ends. It is
// called without the registry lock held.
func WithFinishHook(fn func(Snapshot)) Option {
	return func(r *Registry) { r.onFinish = fn }
}

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		matches: make(map[string]*match),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start creates a new match and returns its initial snapshot.
func (r *Registry) Start(setup Setup) (Snapshot, error) {
	if err := setup.Validate(); err != nil {
		return Snapshot{}, err
	}
	grid := game.NewGrid(setup.Height, setup.Width)
	now := r.now()
	m := &match{
		id:         uuid.NewString(),
		players:    setup.Players,
		grid:       grid,
		engine:     game.NewEngine(grid, setup.Players[0].Token, setup.Players[1].Token),
		status:     StatusActive,
		startedAt:  now,
		lastMoveAt: now,
	}

	r.mu.Lock()
	r.matches[m.id] = m
	snap := m.snapshot()
	r.mu.Unlock()

	r.logger.Info("match started",
		"match_id", m.id,
		"height", setup.Height,
		"width", setup.Width,
		"player1", setup.Players[0].Name,
		"player2", setup.Players[1].Name,
	)
	return snap, nil
}

// Play applies one move for player in the given 0-based column. An illegal
// column is reported as game.ErrColumnOutOfRange or game.ErrColumnFull and
// leaves the match unchanged.
func (r *Registry) Play(id, player string, column int) (MoveResult, error) {
	r.mu.Lock()
	m, ok := r.matches[id]
	if !ok {
		r.mu.Unlock()
		return MoveResult{}, ErrMatchNotFound
	}
	if m.status == StatusFinished {
		r.mu.Unlock()
		return MoveResult{}, ErrMatchFinished
	}
	if m.currentPlayer().Name != player {
		r.mu.Unlock()
		return MoveResult{}, ErrNotYourTurn
	}
	row, ok := m.engine.PlayMove(column)
	if !ok {
		err := m.grid.CheckColumn(column)
		r.mu.Unlock()
		return MoveResult{}, err
	}
	outcome := m.engine.EvaluateStatus(row, column)
	m.moves = append(m.moves, game.Position{Row: row, Column: column})
	m.lastMoveAt = r.now()
	if outcome.Terminal() {
		m.status = StatusFinished
		m.outcome = outcome
		m.endedAt = m.lastMoveAt
	} else {
		m.engine.EndTurn()
	}
	snap := m.snapshot()
	res := MoveResult{Row: row, Column: column, Outcome: outcome, Match: snap}
	if outcome.Sequence != nil {
		res.Outcome = snap.Outcome
	}
	r.mu.Unlock()

	r.logger.Debug("move played", "match_id", id, "player", player, "row", row, "column", column, "outcome", outcome.Kind.String())
	if outcome.Terminal() {
		r.logger.Info("match finished", "match_id", id, "outcome", outcome.Kind.String(), "winner", res.Match.Winner)
		if r.onFinish != nil {
			r.onFinish(res.Match)
		}
	}
	return res, nil
}

func (r *Registry) Get(id string) (Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matches[id]
	if !ok {
		return Snapshot{}, false
	}
	return m.snapshot(), true
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

// Reap drops finished matches that ended more than olderThan ago and returns
// how many were removed.
func (r *Registry) Reap(olderThan time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, m := range r.matches {
		if m.status == StatusFinished && now.Sub(m.endedAt) > olderThan {
			delete(r.matches, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Debug("reaped finished matches", "count", removed)
	}
	return removed
}

func (m *match) currentPlayer() Player {
	turn := m.engine.CurrentTurn()
	if m.players[0].Token == turn {
		return m.players[0]
	}
	return m.players[1]
}
