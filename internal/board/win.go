package board

import "github.com/rocketscienceinc/gridgame/internal/entity"

// lineLength is the exact run that wins.
const lineLength = 3

// axes in scan order: horizontal, vertical, anti-diagonal, diagonal.
var axes = [4]entity.Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

// windowStarts are the offsets of the first cell of every 3-cell window
// containing the placed cell: placed cell first, in the middle, last.
var windowStarts = [lineLength]int{0, -1, -2}

// CheckWin - reports whether player owns a 3-cell line through (x, y).
func (that *Board) CheckWin(x, y int, player *entity.Player) bool {
	return that.WinningLine(x, y, player) != nil
}

// WinningLine - returns the first 3-cell line through (x, y) owned by player,
// ordered along the axis direction, or nil.
func (that *Board) WinningLine(x, y int, player *entity.Player) []entity.Coord {
	if player == nil || !that.owns(x, y, player.ID) {
		return nil
	}

	for _, axis := range axes {
		for _, start := range windowStarts {
			if line := that.window(x, y, axis, start, player.ID); line != nil {
				return line
			}
		}
	}

	return nil
}

func (that *Board) window(x, y int, axis entity.Coord, start int, owner string) []entity.Coord {
	line := make([]entity.Coord, 0, lineLength)

	for step := start; step < start+lineLength; step++ {
		cx, cy := x+axis.X*step, y+axis.Y*step
		if !that.owns(cx, cy, owner) {
			return nil
		}
		line = append(line, entity.Coord{X: cx, Y: cy})
	}

	return line
}

// owns fails fast on out-of-bounds, empty and opponent cells.
func (that *Board) owns(x, y int, owner string) bool {
	if !that.inBounds(x, y) {
		return false
	}
	return that.game.Cells[that.index(x, y)] == owner
}
