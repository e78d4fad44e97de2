package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"emittr/connect4/internal/config"
	"emittr/connect4/internal/console"
	"emittr/connect4/internal/match"
	"emittr/connect4/internal/stats"

	"github.com/urfave/cli/v3"
)

func main() {
	cfg := config.Load()
	logger := newLogger(os.Stderr, cfg.LogLevel, cfg.NoColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(cfg, logger, os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		logger.Error("connect4 failed", "err", err)
		os.Exit(1)
	}
}

// newCommand builds the CLI. Flags default to the values loaded from the
// environment and override them when given.
func newCommand(cfg config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "connect4",
		Usage: "play four in a row on the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Value: int64(cfg.Height), Usage: "grid height (>= 4)"},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Value: int64(cfg.Width), Usage: "grid width (>= 4)"},
			&cli.StringFlag{Name: "player1", Value: cfg.Player1, Usage: "name of the first player"},
			&cli.StringFlag{Name: "player2", Value: cfg.Player2, Usage: "name of the second player"},
			&cli.StringFlag{Name: "token1", Value: cfg.Token1.String(), Usage: "token symbol of the first player"},
			&cli.StringFlag{Name: "token2", Value: cfg.Token2.String(), Usage: "token symbol of the second player"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg.Height = int(cmd.Int("height"))
			cfg.Width = int(cmd.Int("width"))
			cfg.Player1 = cmd.String("player1")
			cfg.Player2 = cmd.String("player2")
			cfg.Token1 = config.ParseToken(cmd.String("token1"), cfg.Token1)
			cfg.Token2 = config.ParseToken(cmd.String("token2"), cfg.Token2)

			setup := cfg.Setup()
			if err := setup.Validate(); err != nil {
				return fmt.Errorf("invalid game setup: %w", err)
			}

			tally := stats.New()
			registry := match.NewRegistry(
				match.WithLogger(logger),
				match.WithFinishHook(tally.Record),
			)
			defer tally.Log(logger)
			return console.New(registry, in, out, logger).Run(ctx, setup)
		},
	}
}
