package game

// Token identifies which side owns a cell. The zero Token means the cell is
// absent.
type Token rune

const (
	NoToken Token = 0
	Red     Token = 'R'
	Blue    Token = 'B'
)

// EmptySlot is drawn for cells that hold no token.
const EmptySlot = '.'

func (t Token) String() string {
	if t == NoToken {
		return string(EmptySlot)
	}
	return string(rune(t))
}

// Position is a 0-based cell coordinate. Row 0 is the bottom of the grid.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}
