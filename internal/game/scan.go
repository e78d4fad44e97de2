package game

// WinLength is the number of aligned tokens needed to win.
const WinLength = 4

// Axis is a line through a cell along which four in a row is checked.
type Axis int

const (
	Horizontal Axis = iota + 1
	Vertical
	RisingDiagonal  // bottom-left to top-right
	FallingDiagonal // top-left to bottom-right
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case RisingDiagonal:
		return "rising diagonal"
	case FallingDiagonal:
		return "falling diagonal"
	default:
		return "none"
	}
}

// step is a unit move along an axis. Each axis is walked along its step and
// its opposite.
type step struct {
	dRow, dCol int
}

// axes is ordered by win precedence.
var axes = []struct {
	axis Axis
	step step
}{
	{Horizontal, step{0, 1}},
	{Vertical, step{1, 0}},
	{RisingDiagonal, step{1, 1}},
	{FallingDiagonal, step{-1, 1}},
}

// sweep walks from (row, col) along s, not including the start, and returns
// the consecutive cells holding token. Presence is checked before identity
// because neighbouring columns fill to different heights.
func sweep(g *Grid, row, col int, s step, token Token) []Position {
	var run []Position
	r, c := row+s.dRow, col+s.dCol
	for {
		occupant, ok := g.Occupant(r, c)
		if !ok || occupant != token {
			return run
		}
		run = append(run, Position{Row: r, Column: c})
		r += s.dRow
		c += s.dCol
	}
}

// runThrough returns the maximal run of token through (row, col) along s,
// ordered from the far end of the backward sweep to the far end of the
// forward sweep.
func runThrough(g *Grid, row, col int, s step, token Token) []Position {
	back := sweep(g, row, col, step{-s.dRow, -s.dCol}, token)
	forward := sweep(g, row, col, s, token)

	run := make([]Position, 0, len(back)+1+len(forward))
	for i := len(back) - 1; i >= 0; i-- {
		run = append(run, back[i])
	}
	run = append(run, Position{Row: row, Column: col})
	return append(run, forward...)
}

// winningRun checks every axis through (row, col) in precedence order and
// returns the first run of at least WinLength cells.
func winningRun(g *Grid, row, col int, token Token) (Axis, []Position, bool) {
	for _, a := range axes {
		run := runThrough(g, row, col, a.step, token)
		if len(run) >= WinLength {
			return a.axis, run, true
		}
	}
	return 0, nil, false
}
