package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"emittr/connect4/internal/game"
	"emittr/connect4/internal/match"

	"github.com/joho/godotenv"
)

type Config struct {
	Height   int
	Width    int
	Player1  string
	Player2  string
	Token1   game.Token
	Token2   game.Token
	LogLevel slog.Level
	NoColor  bool
}

// Load reads the optional .env files and then the environment. Missing or
// malformed values fall back to defaults.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else {
		_ = godotenv.Load(envFiles...)
	}

	return Config{
		Height:   GetEnvAsInt("C4_HEIGHT", game.DefaultHeight),
		Width:    GetEnvAsInt("C4_WIDTH", game.DefaultWidth),
		Player1:  GetEnv("C4_PLAYER1", "Player 1"),
		Player2:  GetEnv("C4_PLAYER2", "Player 2"),
		Token1:   GetEnvAsToken("C4_TOKEN1", game.Red),
		Token2:   GetEnvAsToken("C4_TOKEN2", game.Blue),
		LogLevel: ParseLevel(GetEnv("C4_LOG_LEVEL", "info")),
		NoColor:  os.Getenv("NO_COLOR") != "",
	}
}

// Setup turns the config into a match setup. Validation happens when the
// match is started.
func (c Config) Setup() match.Setup {
	return match.Setup{
		Height: c.Height,
		Width:  c.Width,
		Players: [2]match.Player{
			{Name: c.Player1, Token: c.Token1},
			{Name: c.Player2, Token: c.Token2},
		},
	}
}

func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetEnvAsToken reads a single-character token symbol.
func GetEnvAsToken(key string, fallback game.Token) game.Token {
	return ParseToken(os.Getenv(key), fallback)
}

// ParseToken returns the first rune of s, or fallback when s is blank.
func ParseToken(s string, fallback game.Token) game.Token {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || r == game.EmptySlot {
		return fallback
	}
	return game.Token(r)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
