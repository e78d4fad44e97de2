package game

import "fmt"

// Engine runs one match on a Grid: it tracks whose turn it is, applies
// moves, and evaluates the grid after each move.
//
// An Engine is not safe for concurrent use. Each match owns its own Engine.
type Engine struct {
	grid    *Grid
	players [2]Token
	turn    int
}

// NewEngine panics if grid is nil or the two tokens are not distinct
// non-zero values. first moves first.
func NewEngine(grid *Grid, first, second Token) *Engine {
	if grid == nil {
		panic("game: nil grid")
	}
	if first == NoToken || second == NoToken || first == second {
		panic(fmt.Sprintf("game: tokens must be distinct and non-empty, got %q and %q", first, second))
	}
	return &Engine{grid: grid, players: [2]Token{first, second}}
}

func (e *Engine) Grid() *Grid { return e.grid }

func (e *Engine) CurrentTurn() Token { return e.players[e.turn] }

// IsValidMove reports whether column (0-based) can take another token.
func (e *Engine) IsValidMove(column int) bool {
	return e.grid.IsColumnPlayable(column)
}

// PlayMove drops the current player's token into column and returns its row.
// ok is false and nothing changes if the move is not valid. The turn is not
// advanced; call EndTurn after EvaluateStatus.
func (e *Engine) PlayMove(column int) (row int, ok bool) {
	if !e.IsValidMove(column) {
		return -1, false
	}
	row, err := e.grid.Drop(column, e.CurrentTurn())
	if err != nil {
		return -1, false
	}
	return row, true
}

// EndTurn hands the move to the other player.
func (e *Engine) EndTurn() {
	e.turn = 1 - e.turn
}

// EvaluateStatus inspects the grid after a token landed on
// (lastRow, lastColumn). The cell must be occupied; it panics otherwise.
func (e *Engine) EvaluateStatus(lastRow, lastColumn int) Outcome {
	token, ok := e.grid.Occupant(lastRow, lastColumn)
	if !ok {
		panic(fmt.Sprintf("game: evaluate status on empty cell (%d, %d)", lastRow, lastColumn))
	}
	if axis, run, won := winningRun(e.grid, lastRow, lastColumn, token); won {
		return Outcome{Kind: Win, Winner: token, Axis: axis, Sequence: run}
	}
	if e.grid.IsFull() {
		return Outcome{Kind: Tie}
	}
	return Outcome{Kind: Continue}
}
