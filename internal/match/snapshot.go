package match

import (
	"time"

	"emittr/connect4/internal/game"
)

// Snapshot is a copy of a match's state that is safe to read without the
// registry lock.
type Snapshot struct {
	ID        string          `json:"id"`
	Height    int             `json:"height"`
	Width     int             `json:"width"`
	Players   [2]Player       `json:"players"`
	Status    string          `json:"status"`
	Turn      Player          `json:"turn"`
	Outcome   game.Outcome    `json:"outcome"`
	Winner    string          `json:"winner,omitempty"`
	Moves     []game.Position `json:"moves"`
	Open      []int           `json:"open"`
	Board     string          `json:"board"`
	StartedAt time.Time       `json:"startedAt"`
	EndedAt   time.Time       `json:"endedAt"`
}

func (m *match) snapshot() Snapshot {
	moves := make([]game.Position, len(m.moves))
	copy(moves, m.moves)

	outcome := m.outcome
	if outcome.Sequence != nil {
		outcome.Sequence = append([]game.Position(nil), outcome.Sequence...)
	}

	var winner string
	if outcome.Kind == game.Win {
		for _, p := range m.players {
			if p.Token == outcome.Winner {
				winner = p.Name
			}
		}
	}

	return Snapshot{
		ID:        m.id,
		Height:    m.grid.Height(),
		Width:     m.grid.Width(),
		Players:   m.players,
		Status:    m.status,
		Turn:      m.currentPlayer(),
		Outcome:   outcome,
		Winner:    winner,
		Moves:     moves,
		Open:      m.grid.PlayableColumns(),
		Board:     m.grid.Render(outcome.Sequence),
		StartedAt: m.startedAt,
		EndedAt:   m.endedAt,
	}
}
