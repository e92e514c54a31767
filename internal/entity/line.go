package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// WinLength is the run length that wins. Longer runs win as well.
const WinLength = 5

// Axes are the four undirected lines through a cell: horizontal, vertical
// and the two diagonals.
var Axes = [4]Coordinate{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Line describes the run of one player's stones through a cell along one axis.
// The cell itself always counts, so an empty cell is analysed as if the
// player had just played there.
type Line struct {
	Length       int
	ForwardOpen  bool
	BackwardOpen bool
}

// OpenEnds returns how many ends of the run can still be extended.
func (that Line) OpenEnds() int {
	ends := 0
	if that.ForwardOpen {
		ends++
	}
	if that.BackwardOpen {
		ends++
	}

	return ends
}

// LineDetails returns the run through coord for player on each of the Axes.
func (that *Board) LineDetails(coord Coordinate, player Player) ([4]Line, error) {
	var lines [4]Line

	if !player.IsValid() {
		return lines, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if !that.InBounds(coord.Row, coord.Col) {
		return lines, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, coord.Row, coord.Col)
	}

	for i, axis := range Axes {
		forward, forwardOpen := that.scan(coord, axis.Row, axis.Col, player)
		backward, backwardOpen := that.scan(coord, -axis.Row, -axis.Col, player)

		lines[i] = Line{
			Length:       1 + forward + backward,
			ForwardOpen:  forwardOpen,
			BackwardOpen: backwardOpen,
		}
	}

	return lines, nil
}

// CheckVictory reports whether player has at least WinLength stones in a row through coord.
func (that *Board) CheckVictory(coord Coordinate, player Player) bool {
	lines, err := that.LineDetails(coord, player)
	if err != nil {
		return false
	}

	for _, line := range lines {
		if line.Length >= WinLength {
			return true
		}
	}

	return false
}

// scan counts player's stones strictly beyond coord in direction (dr, dc) and
// reports whether the first cell after the run is on the board and empty.
func (that *Board) scan(coord Coordinate, dr, dc int, player Player) (int, bool) {
	count := 0
	row, col := coord.Row+dr, coord.Col+dc

	for that.InBounds(row, col) && that.cells[row*that.size+col] == player {
		count++
		row += dr
		col += dc
	}

	open := that.InBounds(row, col) && that.cells[row*that.size+col] == ""

	return count, open
}
