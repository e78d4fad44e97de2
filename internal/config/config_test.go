package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"emittr/connect4/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"C4_HEIGHT", "C4_WIDTH", "C4_PLAYER1", "C4_PLAYER2", "C4_TOKEN1", "C4_TOKEN2", "C4_LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Height != game.DefaultHeight || cfg.Width != game.DefaultWidth {
		t.Errorf("dimensions = %dx%d", cfg.Height, cfg.Width)
	}
	if cfg.Player1 != "Player 1" || cfg.Player2 != "Player 2" {
		t.Errorf("players = %q, %q", cfg.Player1, cfg.Player2)
	}
	if cfg.Token1 != game.Red || cfg.Token2 != game.Blue {
		t.Errorf("tokens = %v, %v", cfg.Token1, cfg.Token2)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.NoColor {
		t.Errorf("log level %v, no color %v", cfg.LogLevel, cfg.NoColor)
	}
	if err := cfg.Setup().Validate(); err != nil {
		t.Errorf("default setup invalid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("C4_HEIGHT", "8")
	t.Setenv("C4_WIDTH", " 9 ")
	t.Setenv("C4_PLAYER1", "alice")
	t.Setenv("C4_PLAYER2", "bob")
	t.Setenv("C4_TOKEN1", "X")
	t.Setenv("C4_TOKEN2", "Oh")
	t.Setenv("C4_LOG_LEVEL", "DEBUG")
	t.Setenv("NO_COLOR", "1")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.Height != 8 || cfg.Width != 9 {
		t.Errorf("dimensions = %dx%d", cfg.Height, cfg.Width)
	}
	if cfg.Token1 != 'X' || cfg.Token2 != 'O' {
		t.Errorf("tokens = %v, %v", cfg.Token1, cfg.Token2)
	}
	if cfg.LogLevel != slog.LevelDebug || !cfg.NoColor {
		t.Errorf("log level %v, no color %v", cfg.LogLevel, cfg.NoColor)
	}
	setup := cfg.Setup()
	if setup.Players[0].Name != "alice" || setup.Players[1].Token != 'O' {
		t.Errorf("setup = %+v", setup)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	t.Setenv("C4_WIDTH", "")
	os.Unsetenv("C4_WIDTH")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("C4_WIDTH=11\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := Load(path)
	if cfg.Width != 11 {
		t.Errorf("width = %d, want 11 from .env", cfg.Width)
	}
}

func TestGetEnvAsIntMalformed(t *testing.T) {
	t.Setenv("C4_HEIGHT", "tall")
	if got := GetEnvAsInt("C4_HEIGHT", 6); got != 6 {
		t.Errorf("got %d, want fallback 6", got)
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		in   string
		want game.Token
	}{
		{"", game.Red},
		{"  ", game.Red},
		{"Y", 'Y'},
		{"●", '●'},
		{".", game.Red},
	}
	for _, tt := range tests {
		if got := ParseToken(tt.in, game.Red); got != tt.want {
			t.Errorf("ParseToken(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
