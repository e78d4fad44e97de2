package game

// OutcomeKind is the result of evaluating the grid after a move.
type OutcomeKind int

const (
	Continue OutcomeKind = iota
	Win
	Tie
)

func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Outcome is returned by Engine.EvaluateStatus. Winner and Sequence are only
// set when Kind is Win.
type Outcome struct {
	Kind     OutcomeKind `json:"kind"`
	Winner   Token       `json:"winner,omitempty"`
	Axis     Axis        `json:"axis,omitempty"`
	Sequence []Position  `json:"sequence,omitempty"`
}

// Terminal reports whether the match is over.
func (o Outcome) Terminal() bool {
	return o.Kind == Win || o.Kind == Tie
}
