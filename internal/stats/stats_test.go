package stats

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"emittr/connect4/internal/game"
	"emittr/connect4/internal/match"
)

func TestTallyFromRegistry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tally := New()
	r := match.NewRegistry(
		match.WithFinishHook(tally.Record),
		match.WithClock(func() time.Time {
			now = now.Add(time.Second)
			return now
		}),
	)
	setup := match.Setup{
		Height: 4,
		Width:  4,
		Players: [2]match.Player{
			{Name: "alice", Token: 'X'},
			{Name: "bob", Token: 'O'},
		},
	}
	players := []string{"alice", "bob"}
	play := func(first int, cols ...int) {
		t.Helper()
		snap, err := r.Start(setup)
		if err != nil {
			t.Fatal(err)
		}
		for i, col := range cols {
			if _, err := r.Play(snap.ID, players[(first+i)%2], col); err != nil {
				t.Fatalf("move %d: %v", i, err)
			}
		}
	}

	play(0, 0, 1, 0, 1, 0, 1, 0)
	play(0, 0, 2, 1, 3, 2, 0, 3, 1, 0, 2, 1, 3, 2, 0, 3, 1)
	play(0, 0, 0, 1, 1, 2, 2, 3)

	s := tally.Summary()
	if s.Matches != 3 || s.Ties != 1 {
		t.Fatalf("matches %d ties %d", s.Matches, s.Ties)
	}
	if len(s.Leaderboard) != 1 || s.Leaderboard[0] != (PlayerWins{Name: "alice", Wins: 2}) {
		t.Errorf("leaderboard = %+v", s.Leaderboard)
	}
	if s.WinsByAxis["vertical"] != 1 || s.WinsByAxis["horizontal"] != 1 {
		t.Errorf("wins by axis = %v", s.WinsByAxis)
	}
	if s.AverageMoves != 10 {
		t.Errorf("average moves = %v, want 10", s.AverageMoves)
	}
	if s.AverageDuration <= 0 {
		t.Errorf("average duration = %v", s.AverageDuration)
	}
	if s.WinsByAxis[game.RisingDiagonal.String()] != 0 {
		t.Errorf("unexpected diagonal wins")
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tally := New()
	tally.Log(logger)
	if buf.Len() != 0 {
		t.Fatalf("empty tally logged: %s", buf.String())
	}

	tally.Record(match.Snapshot{Outcome: game.Outcome{Kind: game.Tie}, Moves: make([]game.Position, 16)})
	tally.Log(logger)
	if !strings.Contains(buf.String(), "session summary") || !strings.Contains(buf.String(), "ties=1") {
		t.Errorf("unexpected log: %s", buf.String())
	}
}
