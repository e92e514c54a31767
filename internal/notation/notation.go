// Package notation converts between move text typed by a player and board coordinates.
//
// Two forms are accepted: a column letter followed by a 1-based row ("H8"),
// and two whitespace separated 1-based numbers, row then column ("8 7").
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// maxRowDigits bounds the row in the letter form, e.g. "H8" or "C123".
	maxRowDigits = 3
)

// ParseMove turns raw input into a zero-based coordinate on a board of the given size.
func ParseMove(text string, size int) (entity.Coordinate, error) {
	raw := strings.ToUpper(strings.TrimSpace(text))
	if raw == "" {
		return entity.Coordinate{}, fmt.Errorf("%w: empty input", apperror.ErrInvalidFormat)
	}

	var (
		coord entity.Coordinate
		err   error
	)

	if fields := strings.Fields(raw); len(fields) > 1 {
		coord, err = parseNumeric(fields)
	} else {
		coord, err = parseLetterNumber(raw)
	}

	if err != nil {
		return entity.Coordinate{}, err
	}

	if coord.Row < 0 || coord.Col < 0 || coord.Row >= size || coord.Col >= size {
		return entity.Coordinate{}, fmt.Errorf("%w: %q on a %dx%d board", apperror.ErrOutOfBounds, text, size, size)
	}

	return coord, nil
}

// parseNumeric - "<row> <col>", both 1-based.
func parseNumeric(fields []string) (entity.Coordinate, error) {
	if len(fields) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: expected row and column, got %d values", apperror.ErrInvalidFormat, len(fields))
	}

	row, err := atoi(fields[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidFormat, fields[0])
	}

	col, err := atoi(fields[1])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidFormat, fields[1])
	}

	return entity.Coordinate{Row: row - 1, Col: col - 1}, nil
}

// parseLetterNumber - "<column letter><row>", row 1-based.
func parseLetterNumber(raw string) (entity.Coordinate, error) {
	col := strings.IndexByte(letters, raw[0])
	if col < 0 {
		return entity.Coordinate{}, fmt.Errorf("%w: %q must start with a column letter", apperror.ErrInvalidFormat, raw)
	}

	digits := raw[1:]
	if len(digits) > maxRowDigits {
		return entity.Coordinate{}, fmt.Errorf("%w: row in %q is too long", apperror.ErrInvalidFormat, raw)
	}

	row, err := atoi(digits)
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: row in %q is not a number", apperror.ErrInvalidFormat, raw)
	}

	return entity.Coordinate{Row: row - 1, Col: col}, nil
}

// atoi accepts plain decimal digits only, no sign.
func atoi(token string) (int, error) {
	if token == "" || strings.IndexFunc(token, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, strconv.ErrSyntax
	}

	return strconv.Atoi(token)
}

// FormatCoordinate renders coord as a letter-number label such as "H8".
// Columns past Z have no letter and fall back to the numeric form.
func FormatCoordinate(coord entity.Coordinate) string {
	if coord.Col < 0 || coord.Col >= len(letters) {
		return fmt.Sprintf("%d %d", coord.Row+1, coord.Col+1)
	}

	return fmt.Sprintf("%c%d", letters[coord.Col], coord.Row+1)
}

// FormatBoard returns a text picture of the board with column letters and 1-based row labels.
func FormatBoard(board *entity.Board) string {
	return FormatGrid(board.Grid())
}

// FormatGrid draws a row-major grid as returned by entity.Board.Grid.
func FormatGrid(grid [][]string) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := range grid {
		sb.WriteByte(' ')
		sb.WriteString(columnLabel(col))
	}

	for row, cells := range grid {
		fmt.Fprintf(&sb, "\n%2d", row+1)
		for _, cell := range cells {
			if cell == "" {
				cell = "."
			}
			sb.WriteByte(' ')
			sb.WriteString(cell)
		}
	}

	return sb.String()
}

func columnLabel(col int) string {
	if col < len(letters) {
		return string(letters[col])
	}
	return "?"
}
