// Package console drives matches from a line-oriented text stream. Columns
// are numbered from 1 at this boundary and converted to the engine's 0-based
// columns before a move is played.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"emittr/connect4/internal/game"
	"emittr/connect4/internal/match"
)

// ErrQuit is returned by Run when the user types q.
var ErrQuit = errors.New("quit")

type Console struct {
	registry *match.Registry
	in       *bufio.Scanner
	out      io.Writer
	logger   *slog.Logger

	readOnce sync.Once
	lines    chan inputLine
}

type inputLine struct {
	text string
	err  error
}

func New(registry *match.Registry, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Console{
		registry: registry,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
		lines:    make(chan inputLine),
	}
}

// Run plays matches with the given setup until the input ends, the user
// quits, the user declines a rematch, or ctx is cancelled. None of these
// are errors; a cancelled ctx interrupts a pending prompt.
func (c *Console) Run(ctx context.Context, setup match.Setup) error {
	for {
		err := c.playMatch(ctx, setup)
		switch {
		case errors.Is(err, ErrQuit), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			c.printf("Bye!\n")
			return nil
		case err != nil:
			return err
		}
		again, err := c.askRematch(ctx)
		if err != nil || !again {
			c.printf("Bye!\n")
			return nil
		}
	}
}

func (c *Console) playMatch(ctx context.Context, setup match.Setup) error {
	snap, err := c.registry.Start(setup)
	if err != nil {
		return err
	}
	defer c.registry.Remove(snap.ID)

	c.printf("%s", snap.Board)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		col, err := c.readColumn(ctx, snap.Turn, snap.Width)
		if err != nil {
			return err
		}
		res, err := c.registry.Play(snap.ID, snap.Turn.Name, col)
		switch {
		case errors.Is(err, game.ErrColumnFull):
			c.printf("Column %d is full, pick another one (open: %s).\n", col+1, columnList(snap.Open))
			continue
		case errors.Is(err, game.ErrColumnOutOfRange):
			c.printf("Column must be between 1 and %d.\n", snap.Width)
			continue
		case err != nil:
			return err
		}
		snap = res.Match
		c.printf("%s", snap.Board)

		switch res.Outcome.Kind {
		case game.Win:
			c.printf("Congrats! %s (%s) has won the game!\n", snap.Winner, res.Outcome.Winner)
			return nil
		case game.Tie:
			c.printf("Game tied!\n")
			return nil
		}
	}
}

// readColumn prompts until it gets a number, returning it 0-based. Range
// checks are left to the registry so full and out-of-range columns share one
// path.
func (c *Console) readColumn(ctx context.Context, p match.Player, width int) (int, error) {
	for {
		c.printf("%s (%s), choose a column (1-%d): ", p.Name, p.Token, width)
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(line, "q") {
			return 0, ErrQuit
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.logger.Debug("rejected input", "input", line)
			c.printf("%q is not a column number.\n", line)
			continue
		}
		return n - 1, nil
	}
}

func (c *Console) askRematch(ctx context.Context) (bool, error) {
	c.printf("Play again? (y/n): ")
	line, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine waits for the next input line or for ctx to be done. Scanning
// runs in its own goroutine because a blocked Scan cannot be interrupted;
// after a cancel that goroutine stays parked until the reader returns.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.readOnce.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		c.printf("\n")
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			c.printf("\n")
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- inputLine{text: strings.TrimSpace(c.in.Text())}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
	}
}

func columnList(cols []int) string {
	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = strconv.Itoa(col + 1)
	}
	return strings.Join(labels, ", ")
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
