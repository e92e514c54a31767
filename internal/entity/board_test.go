package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()

	board, err := NewBoard(size)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board", func(t *testing.T) {
		// When: a 15x15 board is created
		board, err := NewBoard(15)

		// Then: it should be empty with no history
		require.NoError(t, err)
		assert.Equal(t, 15, board.Size())
		assert.Empty(t, board.History())
		assert.False(t, board.IsFull())
	})

	t.Run("Rejects a board smaller than five", func(t *testing.T) {
		// When: a 4x4 board is requested
		board, err := NewBoard(4)

		// Then: ErrInvalidBoardSize should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		assert.Nil(t, board)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Successful placement", func(t *testing.T) {
		// Given: an empty board
		board := newTestBoard(t, 15)

		// When: black plays (5, 5)
		err := board.Place(Black, Coordinate{Row: 5, Col: 5})
		require.NoError(t, err)

		// Then: the cell holds black and the move is recorded
		player, ok := board.Get(Coordinate{Row: 5, Col: 5})
		assert.True(t, ok)
		assert.Equal(t, Black, player)
		assert.Equal(t, []Move{{Player: Black, Coord: Coordinate{Row: 5, Col: 5}}}, board.History())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where (5, 5) is taken by black
		board := newTestBoard(t, 15)
		require.NoError(t, board.Place(Black, Coordinate{Row: 5, Col: 5}))

		// When: white tries to play on the same cell
		err := board.Place(White, Coordinate{Row: 5, Col: 5})

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		player, _ := board.Get(Coordinate{Row: 5, Col: 5})
		assert.Equal(t, Black, player)
		assert.Len(t, board.History(), 1)
	})

	t.Run("Error on out of bounds", func(t *testing.T) {
		board := newTestBoard(t, 15)

		for _, coord := range []Coordinate{{Row: 15, Col: 15}, {Row: -1, Col: 0}, {Row: 0, Col: 15}} {
			err := board.Place(Black, coord)

			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		}

		assert.Empty(t, board.History())
	})

	t.Run("Error on unknown player", func(t *testing.T) {
		board := newTestBoard(t, 15)

		err := board.Place(Player("X"), Coordinate{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Empty(t, board.History())
	})
}

func TestBoard_Undo(t *testing.T) {
	t.Run("Undo restores previous state", func(t *testing.T) {
		// Given: two stones on the board
		board := newTestBoard(t, 15)
		require.NoError(t, board.Place(Black, Coordinate{Row: 0, Col: 0}))
		require.NoError(t, board.Place(White, Coordinate{Row: 0, Col: 1}))

		// When: the last move is undone
		undone, ok := board.Undo()

		// Then: the white stone is removed and returned
		require.True(t, ok)
		assert.Equal(t, Move{Player: White, Coord: Coordinate{Row: 0, Col: 1}}, undone)

		_, occupied := board.Get(Coordinate{Row: 0, Col: 1})
		assert.False(t, occupied)

		player, _ := board.Get(Coordinate{Row: 0, Col: 0})
		assert.Equal(t, Black, player)

		// When: the first move is undone as well
		second, ok := board.Undo()

		// Then: the board is empty again
		require.True(t, ok)
		assert.Equal(t, Move{Player: Black, Coord: Coordinate{Row: 0, Col: 0}}, second)
		assert.Empty(t, board.History())
		for _, row := range board.Grid() {
			for _, cell := range row {
				assert.Empty(t, cell)
			}
		}
	})

	t.Run("Undo on empty board is a no-op", func(t *testing.T) {
		board := newTestBoard(t, 15)

		_, ok := board.Undo()

		assert.False(t, ok)
		assert.Empty(t, board.History())
	})

	t.Run("Place then undo is an exact inverse", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := newTestBoard(t, 9)
		moves := []Move{
			{Player: Black, Coord: Coordinate{Row: 4, Col: 4}},
			{Player: White, Coord: Coordinate{Row: 3, Col: 3}},
			{Player: Black, Coord: Coordinate{Row: 4, Col: 5}},
		}
		for _, move := range moves {
			require.NoError(t, board.Place(move.Player, move.Coord))
		}

		before := board.Clone()

		// When: every empty cell is played and immediately undone
		for row := 0; row < board.Size(); row++ {
			for col := 0; col < board.Size(); col++ {
				coord := Coordinate{Row: row, Col: col}
				if !board.IsEmpty(coord) {
					continue
				}

				require.NoError(t, board.Place(White, coord))
				_, ok := board.Undo()
				require.True(t, ok)
			}
		}

		// Then: grid and history are unchanged
		assert.Equal(t, before.Grid(), board.Grid())
		assert.Equal(t, before.History(), board.History())
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 5x5 board filled except for the last cell
	board := newTestBoard(t, 5)
	player := Black

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == 4 && col == 4 {
				continue
			}
			require.NoError(t, board.Place(player, Coordinate{Row: row, Col: col}))
			player = player.Opponent()
		}
	}

	// Then: it is not full yet
	assert.False(t, board.IsFull())

	// When: the last cell is played
	require.NoError(t, board.Place(player, Coordinate{Row: 4, Col: 4}))

	// Then: the board is full
	assert.True(t, board.IsFull())
}

func TestBoard_Clone(t *testing.T) {
	board := newTestBoard(t, 7)
	require.NoError(t, board.Place(Black, Coordinate{Row: 3, Col: 3}))

	clone := board.Clone()
	require.NoError(t, clone.Place(White, Coordinate{Row: 2, Col: 2}))

	assert.Len(t, board.History(), 1)
	assert.True(t, board.IsEmpty(Coordinate{Row: 2, Col: 2}))
	assert.Len(t, clone.History(), 2)
}

func TestBoard_InBoundsAndGet(t *testing.T) {
	board := newTestBoard(t, 5)

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(4, 4))
	assert.False(t, board.InBounds(5, 0))
	assert.False(t, board.InBounds(0, -1))

	_, ok := board.Get(Coordinate{Row: 9, Col: 9})
	assert.False(t, ok)
	assert.False(t, board.IsEmpty(Coordinate{Row: 9, Col: 9}))
}
