package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("move is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidFormat    = errors.New("invalid move format")
	ErrMalformedState   = errors.New("malformed game state")
	ErrNoMovesAvailable = errors.New("no moves available")

	ErrInvalidBoardSize = errors.New("board size must be at least 5")
	ErrInvalidPlayer    = errors.New("unknown player")
	ErrInvalidAIMode    = errors.New("invalid ai mode")

	ErrGameFinished  = errors.New("game is already finished")
	ErrNothingToUndo = errors.New("no moves to undo")
	ErrSaveNotFound  = errors.New("save not found")
)
