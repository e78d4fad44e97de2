package game

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest height or width that can hold four in a row.
const MinDimension = 4

const (
	DefaultHeight = 6
	DefaultWidth  = 7
)

var (
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column out of range")
)

// Grid is a fixed-size set of column stacks. Tokens are appended to a column
// in drop order, so a token's index in its stack is its row.
type Grid struct {
	height  int
	width   int
	columns [][]Token
}

// NewGrid panics if either dimension is below MinDimension. Callers that take
// dimensions from user input validate them first.
func NewGrid(height, width int) *Grid {
	if height < MinDimension || width < MinDimension {
		panic(fmt.Sprintf("game: invalid grid dimensions %dx%d, both must be >= %d", height, width, MinDimension))
	}
	columns := make([][]Token, width)
	for c := range columns {
		columns[c] = make([]Token, 0, height)
	}
	return &Grid{height: height, width: width, columns: columns}
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// ColumnHeight returns how many tokens the column holds, or 0 for a column
// outside the grid.
func (g *Grid) ColumnHeight(column int) int {
	if column < 0 || column >= g.width {
		return 0
	}
	return len(g.columns[column])
}

// CheckColumn reports why a token cannot be dropped into column, or nil if
// it can.
func (g *Grid) CheckColumn(column int) error {
	if column < 0 || column >= g.width {
		return ErrColumnOutOfRange
	}
	if len(g.columns[column]) >= g.height {
		return ErrColumnFull
	}
	return nil
}

func (g *Grid) IsColumnPlayable(column int) bool {
	return g.CheckColumn(column) == nil
}

// Drop appends token to column and returns the row it landed on.
func (g *Grid) Drop(column int, token Token) (int, error) {
	if err := g.CheckColumn(column); err != nil {
		return -1, err
	}
	g.columns[column] = append(g.columns[column], token)
	return len(g.columns[column]) - 1, nil
}

// Occupant returns the token at (row, column). The second result is false
// when the cell is outside the grid or has not been filled yet.
func (g *Grid) Occupant(row, column int) (Token, bool) {
	if column < 0 || column >= g.width || row < 0 {
		return NoToken, false
	}
	stack := g.columns[column]
	if row >= len(stack) {
		return NoToken, false
	}
	return stack[row], true
}

func (g *Grid) TotalOccupied() int {
	total := 0
	for _, stack := range g.columns {
		total += len(stack)
	}
	return total
}

func (g *Grid) IsFull() bool {
	return g.TotalOccupied() == g.height*g.width
}

// PlayableColumns lists every column that still accepts a token.
func (g *Grid) PlayableColumns() []int {
	cols := make([]int, 0, g.width)
	for c := 0; c < g.width; c++ {
		if g.IsColumnPlayable(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Clone returns a deep copy that can be mutated without touching g.
func (g *Grid) Clone() *Grid {
	dest := &Grid{height: g.height, width: g.width, columns: make([][]Token, g.width)}
	for c, stack := range g.columns {
		dest.columns[c] = make([]Token, len(stack), g.height)
		copy(dest.columns[c], stack)
	}
	return dest
}
