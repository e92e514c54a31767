// Package codec saves and restores a game as a flat JSON record.
//
// Only the board size and the ordered move history are stored. Loading
// replays every move through entity.Board.Place, so a restored board passed
// the same checks as a game played move by move.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// State is a restored game.
type State struct {
	Board      *entity.Board
	NextPlayer entity.Player
	AIMode     entity.AIMode
}

type persistedMove struct {
	Player string `json:"player"`
	Row    *int   `json:"row"`
	Col    *int   `json:"col"`
}

type persistedState struct {
	Size       *int            `json:"size"`
	Moves      []persistedMove `json:"moves"`
	NextPlayer string          `json:"next_player,omitempty"`
	AIMode     string          `json:"ai_mode,omitempty"`
}

// Serialize encodes the board history together with the side to move and the ai mode.
func Serialize(board *entity.Board, next entity.Player, mode entity.AIMode) ([]byte, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: next player %q", apperror.ErrInvalidPlayer, next)
	}

	if _, err := entity.ParseAIMode(string(mode)); err != nil {
		return nil, err
	}

	history := board.History()
	size := board.Size()

	state := persistedState{
		Size:       &size,
		Moves:      make([]persistedMove, 0, len(history)),
		NextPlayer: string(next),
		AIMode:     string(mode),
	}

	for _, move := range history {
		row, col := move.Coord.Row, move.Coord.Col

		state.Moves = append(state.Moves, persistedMove{
			Player: string(move.Player),
			Row:    &row,
			Col:    &col,
		})
	}

	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("could not marshal state: %w", err)
	}

	return data, nil
}

// Deserialize rebuilds a board from data by replaying its moves.
// A missing next_player means black is to move and a missing ai_mode means off.
func Deserialize(data []byte) (*State, error) {
	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
	}

	if persisted.Size == nil {
		return nil, fmt.Errorf("%w: missing size", apperror.ErrMalformedState)
	}

	board, err := entity.NewBoard(*persisted.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
	}

	for i, move := range persisted.Moves {
		player, err := entity.ParsePlayer(move.Player)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", apperror.ErrMalformedState, i, err)
		}

		if move.Row == nil || move.Col == nil {
			return nil, fmt.Errorf("%w: move %d: missing row or col", apperror.ErrMalformedState, i)
		}

		if err = board.Place(player, entity.Coordinate{Row: *move.Row, Col: *move.Col}); err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", apperror.ErrMalformedState, i, err)
		}
	}

	state := &State{
		Board:      board,
		NextPlayer: entity.Black,
		AIMode:     entity.AIOff,
	}

	if persisted.NextPlayer != "" {
		if state.NextPlayer, err = entity.ParsePlayer(persisted.NextPlayer); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
		}
	}

	if persisted.AIMode != "" {
		if state.AIMode, err = entity.ParseAIMode(persisted.AIMode); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
		}
	}

	return state, nil
}
