package game

import (
	"strconv"
	"strings"
)

// Render draws the grid top row first with 1-based column numbers underneath.
// Cells in highlight are wrapped in brackets.
func (g *Grid) Render(highlight []Position) string {
	marked := make(map[Position]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}

	var b strings.Builder
	for row := g.height - 1; row >= 0; row-- {
		for col := 0; col < g.width; col++ {
			token, _ := g.Occupant(row, col)
			if marked[Position{Row: row, Column: col}] {
				b.WriteString("[" + token.String() + "]")
			} else {
				b.WriteString(" " + token.String() + " ")
			}
		}
		b.WriteByte('\n')
	}
	for col := 0; col < g.width; col++ {
		label := strconv.Itoa(col + 1)
		b.WriteString(" " + label + strings.Repeat(" ", 2-min(len(label), 2)))
	}
	b.WriteByte('\n')
	return b.String()
}
