package board

import "github.com/rocketscienceinc/gridgame/internal/entity"

type Outcome string

const (
	OutcomeRejected Outcome = "rejected"
	OutcomePlaced   Outcome = "placed"
	OutcomeWon      Outcome = "won"
	OutcomeDraw     Outcome = "draw"
)

// PlacementResult is what Place reports back to the presentation layer.
type PlacementResult struct {
	Outcome Outcome `json:"outcome"`
	// Reason is set only for rejected placements.
	Reason      error          `json:"-"`
	Coord       entity.Coord   `json:"coord"`
	WinningLine []entity.Coord `json:"winning_line,omitempty"`
	NextPlayer  *entity.Player `json:"next_player,omitempty"`
	State       *entity.Game   `json:"state"`
}

func (that PlacementResult) Accepted() bool {
	return that.Outcome != OutcomeRejected
}

func (that PlacementResult) Won() bool {
	return that.Outcome == OutcomeWon
}

func (that PlacementResult) Draw() bool {
	return that.Outcome == OutcomeDraw
}
