package board

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

// MinSize is the smallest board a 3-cell line fits on.
const MinSize = 3

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidPlayers   = errors.New("invalid players")
	ErrInvalidSnapshot  = errors.New("invalid game snapshot")
)

// StarterPicker returns an index in [0, n), same contract as rand.Intn.
type StarterPicker func(n int) int

// Board owns the grid, the current player and the game status.
type Board struct {
	game    *entity.Game
	current *entity.Player
}

// New - creates an empty board in the waiting state.
func New(size int, playerOne, playerTwo *entity.Player) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	if err := validatePlayers(playerOne, playerTwo); err != nil {
		return nil, err
	}

	one, two := *playerOne, *playerTwo
	one.Mark, two.Mark = entity.MarkX, entity.MarkO

	return &Board{
		game: &entity.Game{
			Size:    size,
			Cells:   make([]string, size*size),
			Players: []*entity.Player{&one, &two},
			Status:  entity.StatusWaiting,
		},
	}, nil
}

// Restore - rebuilds a board from a stored snapshot.
func Restore(snapshot *entity.Game) (*Board, error) {
	if snapshot == nil {
		return nil, ErrInvalidSnapshot
	}

	if snapshot.Size < MinSize || len(snapshot.Cells) != snapshot.Size*snapshot.Size {
		return nil, fmt.Errorf("%w: size %d with %d cells", ErrInvalidSnapshot, snapshot.Size, len(snapshot.Cells))
	}

	if len(snapshot.Players) != 2 {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidSnapshot, len(snapshot.Players))
	}

	if err := validatePlayers(snapshot.Players[0], snapshot.Players[1]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	game := snapshot.Clone()

	for _, cell := range game.Cells {
		if cell != entity.EmptyCell && game.PlayerByID(cell) == nil {
			return nil, fmt.Errorf("%w: unknown cell owner %q", ErrInvalidSnapshot, cell)
		}
	}

	restored := &Board{game: game}

	switch game.Status {
	case entity.StatusWaiting, entity.StatusDraw:
	case entity.StatusOngoing, entity.StatusWon:
		restored.current = game.PlayerByID(game.Turn)
		if restored.current == nil {
			return nil, fmt.Errorf("%w: unknown player turn %q", ErrInvalidSnapshot, game.Turn)
		}
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidSnapshot, apperror.ErrUnknownGameStatus, game.Status)
	}

	return restored, nil
}

// Start - picks the first player and moves the game to ongoing.
// A nil picker lets player one start.
func (that *Board) Start(pick StarterPicker) error {
	if !that.game.IsWaiting() {
		return apperror.ErrGameAlreadyStarted
	}

	idx := 0
	if pick != nil {
		idx = pick(len(that.game.Players))
	}

	if idx < 0 || idx >= len(that.game.Players) {
		return fmt.Errorf("%w: starter index %d", ErrInvalidPlayers, idx)
	}

	that.current = that.game.Players[idx]
	that.game.Turn = that.current.ID
	that.game.Status = entity.StatusOngoing

	return nil
}

// Place - marks (x, y) for the current player.
// Invalid moves are reported through the result, never as an error.
func (that *Board) Place(x, y int) PlacementResult {
	at := entity.Coord{X: x, Y: y}

	if err := that.validateMove(x, y); err != nil {
		return that.result(OutcomeRejected, at, err)
	}

	that.game.Cells[that.index(x, y)] = that.current.ID
	that.game.Moves++

	return that.updateGameStatus(at)
}

// validateMove - checks if the move is valid.
func (that *Board) validateMove(x, y int) error {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return err
	}

	if !that.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if that.game.Cells[that.index(x, y)] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - resolves win, draw or next turn after a placement.
func (that *Board) updateGameStatus(at entity.Coord) PlacementResult {
	if line := that.WinningLine(at.X, at.Y, that.current); line != nil {
		that.game.Winner = that.current.ID
		that.game.WinningLine = line
		that.game.Status = entity.StatusWon

		return that.result(OutcomeWon, at, nil)
	}

	if that.game.Moves == len(that.game.Cells) {
		that.game.Status = entity.StatusDraw
		that.game.Turn = ""
		that.current = nil

		return that.result(OutcomeDraw, at, nil)
	}

	that.current = that.opponent(that.current)
	that.game.Turn = that.current.ID

	return that.result(OutcomePlaced, at, nil)
}

func (that *Board) opponent(player *entity.Player) *entity.Player {
	if that.game.Players[0].Is(player) {
		return that.game.Players[1]
	}
	return that.game.Players[0]
}

func (that *Board) result(outcome Outcome, at entity.Coord, reason error) PlacementResult {
	res := PlacementResult{
		Outcome: outcome,
		Reason:  reason,
		Coord:   at,
		State:   that.State(),
	}

	if outcome == OutcomeWon {
		res.WinningLine = append([]entity.Coord(nil), that.game.WinningLine...)
	}

	if that.game.IsOngoing() && that.current != nil {
		next := *that.current
		res.NextPlayer = &next
	}

	return res
}

// State - returns a read-only snapshot of the game.
func (that *Board) State() *entity.Game {
	return that.game.Clone()
}

// CurrentPlayer - returns a copy of the player to move, nil when nobody is.
func (that *Board) CurrentPlayer() *entity.Player {
	if that.current == nil {
		return nil
	}
	player := *that.current
	return &player
}

func (that *Board) Size() int {
	return that.game.Size
}

// Cell - returns the owner ID at (x, y), EmptyCell for empty or out-of-range cells.
func (that *Board) Cell(x, y int) string {
	return that.game.CellAt(x, y)
}

// SetID - assigns the identifier stored with the snapshot.
func (that *Board) SetID(id string) {
	that.game.ID = id
}

func (that *Board) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.game.Size && y < that.game.Size
}

func (that *Board) index(x, y int) int {
	return y*that.game.Size + x
}

func validatePlayers(playerOne, playerTwo *entity.Player) error {
	if playerOne == nil || playerTwo == nil {
		return fmt.Errorf("%w: two players are required", ErrInvalidPlayers)
	}

	if playerOne.ID == "" || playerTwo.ID == "" {
		return fmt.Errorf("%w: empty player id", ErrInvalidPlayers)
	}

	if playerOne.ID == playerTwo.ID {
		return fmt.Errorf("%w: duplicate player id %q", ErrInvalidPlayers, playerOne.ID)
	}

	return nil
}
