// Package stats keeps running totals over finished matches for the session
// summary.
package stats

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"emittr/connect4/internal/game"
	"emittr/connect4/internal/match"
)

type Tally struct {
	mu            sync.Mutex
	totalMatches  int
	ties          int
	winsByPlayer  map[string]int
	winsByAxis    map[game.Axis]int
	durations     []time.Duration
	movesPerMatch []int
}

func New() *Tally {
	return &Tally{
		winsByPlayer: make(map[string]int),
		winsByAxis:   make(map[game.Axis]int),
	}
}

// Record is meant to be installed as the registry's finish hook.
func (t *Tally) Record(s match.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalMatches++
	switch s.Outcome.Kind {
	case game.Win:
		t.winsByPlayer[s.Winner]++
		t.winsByAxis[s.Outcome.Axis]++
	case game.Tie:
		t.ties++
	}
	if !s.EndedAt.IsZero() {
		t.durations = append(t.durations, s.EndedAt.Sub(s.StartedAt))
	}
	t.movesPerMatch = append(t.movesPerMatch, len(s.Moves))
}

type PlayerWins struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

type Summary struct {
	Matches         int            `json:"matches"`
	Ties            int            `json:"ties"`
	Leaderboard     []PlayerWins   `json:"leaderboard"`
	WinsByAxis      map[string]int `json:"winsByAxis"`
	AverageDuration time.Duration  `json:"averageDuration"`
	AverageMoves    float64        `json:"averageMoves"`
}

func (t *Tally) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		Matches:    t.totalMatches,
		Ties:       t.ties,
		WinsByAxis: make(map[string]int, len(t.winsByAxis)),
	}
	for name, wins := range t.winsByPlayer {
		s.Leaderboard = append(s.Leaderboard, PlayerWins{Name: name, Wins: wins})
	}
	sort.Slice(s.Leaderboard, func(i, j int) bool {
		if s.Leaderboard[i].Wins != s.Leaderboard[j].Wins {
			return s.Leaderboard[i].Wins > s.Leaderboard[j].Wins
		}
		return s.Leaderboard[i].Name < s.Leaderboard[j].Name
	})
	for axis, n := range t.winsByAxis {
		s.WinsByAxis[axis.String()] = n
	}

	if len(t.durations) > 0 {
		var sum time.Duration
		for _, d := range t.durations {
			sum += d
		}
		s.AverageDuration = sum / time.Duration(len(t.durations))
	}
	if len(t.movesPerMatch) > 0 {
		sum := 0
		for _, n := range t.movesPerMatch {
			sum += n
		}
		s.AverageMoves = float64(sum) / float64(len(t.movesPerMatch))
	}
	return s
}

// Log writes the summary as one structured record.
func (t *Tally) Log(logger *slog.Logger) {
	s := t.Summary()
	if s.Matches == 0 {
		return
	}
	logger.Info("session summary",
		"matches", s.Matches,
		"ties", s.Ties,
		"leaderboard", s.Leaderboard,
		"wins_by_axis", s.WinsByAxis,
		"avg_duration", s.AverageDuration.Round(time.Millisecond),
		"avg_moves", s.AverageMoves,
	)
}
