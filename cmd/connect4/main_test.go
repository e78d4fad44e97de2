package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"emittr/connect4/internal/config"
	"emittr/connect4/internal/game"
)

func testConfig() config.Config {
	return config.Config{
		Height:  game.DefaultHeight,
		Width:   game.DefaultWidth,
		Player1: "Player 1",
		Player2: "Player 2",
		Token1:  game.Red,
		Token2:  game.Blue,
	}
}

func TestCommandFlagsOverrideConfig(t *testing.T) {
	var out, logs bytes.Buffer
	logger := newLogger(&logs, slog.LevelInfo, true)
	in := strings.NewReader("1\n1\n2\n2\n3\n3\n4\nn\n")

	cmd := newCommand(testConfig(), logger, in, &out)
	err := cmd.Run(context.Background(), []string{"connect4", "--height", "4", "--width", "5", "--player1", "ann", "--token1", "X", "--token2", "O"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "ann (X), choose a column (1-5): ") {
		t.Errorf("flags not applied:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Congrats! ann (X) has won the game!") {
		t.Errorf("missing win message:\n%s", out.String())
	}
	for _, want := range []string{"match finished", "session summary"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("missing %q log:\n%s", want, logs.String())
		}
	}
}

func TestCommandRejectsSmallGrid(t *testing.T) {
	var out bytes.Buffer
	logger := newLogger(&bytes.Buffer{}, slog.LevelInfo, true)
	cmd := newCommand(testConfig(), logger, strings.NewReader(""), &out)
	err := cmd.Run(context.Background(), []string{"connect4", "--width", "3"})
	if err == nil || !strings.Contains(err.Error(), "width 3 must be >= 4") {
		t.Fatalf("expected dimension error, got %v", err)
	}
}
