package notation

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("Letter and number", func(t *testing.T) {
		coord, err := ParseMove("H8", 15)

		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 7, Col: 7}, coord)
	})

	t.Run("Lower case letter with surrounding spaces", func(t *testing.T) {
		coord, err := ParseMove("  a1 ", 15)

		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 0, Col: 0}, coord)
	})

	t.Run("Space separated", func(t *testing.T) {
		coord, err := ParseMove("8 7", 15)

		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 7, Col: 6}, coord)
	})

	t.Run("Tab separated", func(t *testing.T) {
		coord, err := ParseMove("15\t1", 15)

		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 14, Col: 0}, coord)
	})

	t.Run("Leading zeros", func(t *testing.T) {
		coord, err := ParseMove("H08", 15)

		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 7, Col: 7}, coord)

		coord, err = ParseMove("008 07", 15)

		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 7, Col: 6}, coord)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		for _, text := range []string{"Z30", "P1", "A16", "16 1", "0 5", "A0"} {
			_, err := ParseMove(text, 15)

			require.ErrorIs(t, err, apperror.ErrOutOfBounds, text)
		}
	})

	t.Run("Invalid format", func(t *testing.T) {
		for _, text := range []string{"", "   ", "8", "88", "H", "HX", "8 x", "a b", "1 2 3", "?5",
			"+8 7", "-1 5", "8 +7", "H+8", "H-1", "H0008", "8 7x", "H 8x"} {
			_, err := ParseMove(text, 15)

			require.ErrorIs(t, err, apperror.ErrInvalidFormat, text)
		}
	})
}

func TestFormatCoordinate(t *testing.T) {
	assert.Equal(t, "H8", FormatCoordinate(entity.Coordinate{Row: 7, Col: 7}))
	assert.Equal(t, "A1", FormatCoordinate(entity.Coordinate{Row: 0, Col: 0}))
	assert.Equal(t, "Z26", FormatCoordinate(entity.Coordinate{Row: 25, Col: 25}))
}

func TestParseMove_InvertsFormatCoordinate(t *testing.T) {
	for _, size := range []int{5, 15, 19, 30} {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				coord := entity.Coordinate{Row: row, Col: col}

				parsed, err := ParseMove(FormatCoordinate(coord), size)

				require.NoError(t, err)
				require.Equal(t, coord, parsed)
			}
		}
	}
}

func TestFormatBoard(t *testing.T) {
	// Given: a 5x5 board with two stones
	board, err := entity.NewBoard(5)
	require.NoError(t, err)
	require.NoError(t, board.Place(entity.Black, entity.Coordinate{Row: 0, Col: 0}))
	require.NoError(t, board.Place(entity.White, entity.Coordinate{Row: 2, Col: 3}))

	// When: rendering it
	text := FormatBoard(board)

	// Then: letters head the columns and rows are numbered from 1
	expected := "   A B C D E\n" +
		" 1 B . . . .\n" +
		" 2 . . . . .\n" +
		" 3 . . . W .\n" +
		" 4 . . . . .\n" +
		" 5 . . . . ."
	assert.Equal(t, expected, text)
}
