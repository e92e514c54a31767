package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const MinBoardSize = 5

// Coordinate is a zero-based (row, col) pair.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is one successful placement recorded in the board history.
type Move struct {
	Player Player
	Coord  Coordinate
}

// Board is a square Gomoku grid with the ordered history of placements.
// The grid is only changed by Place and Undo, so replaying History on an
// empty board of the same size always gives the same grid.
type Board struct {
	size    int
	cells   []Player
	history []Move
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Player, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}

// Get returns the stone at coord, false when the cell is empty or off the board.
func (that *Board) Get(coord Coordinate) (Player, bool) {
	if !that.InBounds(coord.Row, coord.Col) {
		return "", false
	}

	player := that.cells[that.index(coord)]

	return player, player != ""
}

func (that *Board) IsEmpty(coord Coordinate) bool {
	_, occupied := that.Get(coord)
	return that.InBounds(coord.Row, coord.Col) && !occupied
}

// Place puts a stone of player on coord and records the move.
func (that *Board) Place(player Player, coord Coordinate) error {
	if !player.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if !that.InBounds(coord.Row, coord.Col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, coord.Row, coord.Col)
	}

	idx := that.index(coord)
	if that.cells[idx] != "" {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, coord.Row, coord.Col)
	}

	that.cells[idx] = player
	that.history = append(that.history, Move{Player: player, Coord: coord})

	return nil
}

// Undo removes the most recent placement and returns it.
func (that *Board) Undo() (Move, bool) {
	if len(that.history) == 0 {
		return Move{}, false
	}

	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]
	that.cells[that.index(last.Coord)] = ""

	return last, true
}

func (that *Board) IsFull() bool {
	return len(that.history) == len(that.cells)
}

// LastMove returns the most recent placement, false on an empty board.
func (that *Board) LastMove() (Move, bool) {
	if len(that.history) == 0 {
		return Move{}, false
	}

	return that.history[len(that.history)-1], true
}

// History returns a copy of the placements in play order.
func (that *Board) History() []Move {
	history := make([]Move, len(that.history))
	copy(history, that.history)

	return history
}

// Grid returns a row-major snapshot of the cells, "" for an empty cell.
func (that *Board) Grid() [][]string {
	grid := make([][]string, that.size)
	for row := range grid {
		grid[row] = make([]string, that.size)
		for col := range grid[row] {
			grid[row][col] = string(that.cells[row*that.size+col])
		}
	}

	return grid
}

func (that *Board) Clone() *Board {
	clone := &Board{
		size:    that.size,
		cells:   make([]Player, len(that.cells)),
		history: that.History(),
	}
	copy(clone.cells, that.cells)

	return clone
}

func (that *Board) index(coord Coordinate) int {
	return coord.Row*that.size + coord.Col
}
