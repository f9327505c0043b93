package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
)

const (
	StatusWaiting = "waiting"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	EmptyCell = ""
)

// Coord is a grid position, X is the column and Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Game is a snapshot of the board state, safe to store and render.
type Game struct {
	ID          string    `json:"id"`
	Size        int       `json:"size"`
	Cells       []string  `json:"cells"`
	Players     []*Player `json:"players"`
	Turn        string    `json:"player_turn"`
	Winner      string    `json:"winner,omitempty"`
	WinningLine []Coord   `json:"winning_line,omitempty"`
	Status      string    `json:"status"`
	Moves       int       `json:"moves"`
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// IsOver - reports whether the game reached a terminal state.
func (that *Game) IsOver() bool {
	return that.IsWon() || that.IsDraw()
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsOver():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// CellAt - returns the owner ID at (x, y) or EmptyCell when out of range.
func (that *Game) CellAt(x, y int) string {
	if x < 0 || y < 0 || x >= that.Size || y >= that.Size {
		return EmptyCell
	}
	return that.Cells[y*that.Size+x]
}

func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player != nil && player.ID == id {
			return player
		}
	}
	return nil
}

// Clone - returns a deep copy so callers can't mutate the board through a snapshot.
func (that *Game) Clone() *Game {
	clone := *that

	clone.Cells = append([]string(nil), that.Cells...)
	if that.WinningLine != nil {
		clone.WinningLine = append([]Coord(nil), that.WinningLine...)
	}

	clone.Players = make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		if player == nil {
			clone.Players = append(clone.Players, nil)
			continue
		}
		p := *player
		clone.Players = append(clone.Players, &p)
	}

	return &clone
}
