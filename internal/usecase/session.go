package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/codec"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/notation"
)

// ResultDraw is the winner value of a game that ended on a full board.
const ResultDraw = "draw"

type bot interface {
	SelectMove(board *entity.Board, ai, opponent entity.Player) (entity.Coordinate, error)
}

type saveRepo interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// View is a read-only snapshot of a session for rendering.
type View struct {
	Size          int                `json:"size"`
	Board         [][]string         `json:"board"`
	CurrentPlayer entity.Player      `json:"current_player"`
	AISide        entity.AIMode      `json:"ai_side"`
	Winner        string             `json:"winner,omitempty"`
	IsFull        bool               `json:"is_full"`
	CanUndo       bool               `json:"can_undo"`
	LastMove      *entity.Coordinate `json:"last_move,omitempty"`
}

// Session owns one game. Every method locks the session, so a session can be
// shared between goroutines while the board itself stays single-writer.
type Session struct {
	mu sync.Mutex

	logger *slog.Logger
	bot    bot
	saves  saveRepo

	board    *entity.Board
	current  entity.Player
	aiMode   entity.AIMode
	winner   string
	lastMove *entity.Coordinate
}

// NewSession starts a game on an empty board. If the bot plays black it moves at once.
func NewSession(logger *slog.Logger, bot bot, saves saveRepo, size int, mode entity.AIMode) (*Session, error) {
	session := &Session{
		logger: logger.With("component", "session"),
		bot:    bot,
		saves:  saves,
	}

	if err := session.reset(size, mode); err != nil {
		return nil, err
	}

	return session, nil
}

// Snapshot returns the current state of the game.
func (that *Session) Snapshot() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

// Play parses a move typed by a player and plays it for the side to move.
func (that *Session) Play(text string) (View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	coord, err := notation.ParseMove(text, that.board.Size())
	if err != nil {
		return that.view(), fmt.Errorf("failed to parse move: %w", err)
	}

	if err = that.makeTurn(coord); err != nil {
		return that.view(), err
	}

	return that.view(), nil
}

// MakeTurn plays coord for the side to move and lets the bot answer.
func (that *Session) MakeTurn(coord entity.Coordinate) (View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.makeTurn(coord); err != nil {
		return that.view(), err
	}

	return that.view(), nil
}

// Undo takes back the last move. When that move was the bot's, the move before
// it is taken back too so the human is to move again.
func (that *Session) Undo() (View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	undone, ok := that.board.Undo()
	if !ok {
		return that.view(), apperror.ErrNothingToUndo
	}

	that.winner = ""
	that.current = undone.Player

	if ai, enabled := that.aiMode.Player(); enabled && undone.Player == ai {
		if second, ok := that.board.Undo(); ok {
			that.current = second.Player
		}
	}

	that.lastMove = nil
	if last, ok := that.board.LastMove(); ok {
		that.lastMove = &last.Coord
	}

	that.logger.Debug("move undone", "player", undone.Player, "coord", notation.FormatCoordinate(undone.Coord))

	if err := that.applyBotMoves(); err != nil {
		return that.view(), err
	}

	return that.view(), nil
}

// Reset starts a new game with the given board size and ai mode.
func (that *Session) Reset(size int, mode entity.AIMode) (View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.reset(size, mode); err != nil {
		return that.view(), err
	}

	return that.view(), nil
}

// Configure changes which side the bot plays. The bot moves at once if it is its turn.
func (that *Session) Configure(mode entity.AIMode) (View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := entity.ParseAIMode(string(mode)); err != nil {
		return that.view(), err
	}

	that.aiMode = mode

	if err := that.applyBotMoves(); err != nil {
		return that.view(), err
	}

	return that.view(), nil
}

// Save stores the game under name.
func (that *Session) Save(ctx context.Context, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	data, err := codec.Serialize(that.board, that.current, that.aiMode)
	if err != nil {
		return fmt.Errorf("failed to serialize game: %w", err)
	}

	if err = that.saves.Save(ctx, name, data); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game saved", "name", name, "moves", len(that.board.History()))

	return nil
}

// Load replaces the game with the one stored under name.
func (that *Session) Load(ctx context.Context, name string) (View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	data, err := that.saves.Load(ctx, name)
	if err != nil {
		return that.view(), fmt.Errorf("failed to load game: %w", err)
	}

	state, err := codec.Deserialize(data)
	if err != nil {
		return that.view(), fmt.Errorf("failed to restore game: %w", err)
	}

	that.board = state.Board
	that.current = state.NextPlayer
	that.aiMode = state.AIMode
	that.winner = ""
	that.lastMove = nil

	if last, ok := that.board.LastMove(); ok {
		that.lastMove = &last.Coord
		that.winner = that.result(last)
	}

	that.logger.Info("game loaded", "name", name, "moves", len(that.board.History()))

	if err = that.applyBotMoves(); err != nil {
		return that.view(), err
	}

	return that.view(), nil
}

func (that *Session) reset(size int, mode entity.AIMode) error {
	if _, err := entity.ParseAIMode(string(mode)); err != nil {
		return err
	}

	board, err := entity.NewBoard(size)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	that.board = board
	that.current = entity.Black
	that.aiMode = mode
	that.winner = ""
	that.lastMove = nil

	return that.applyBotMoves()
}

func (that *Session) makeTurn(coord entity.Coordinate) error {
	if that.winner != "" {
		return apperror.ErrGameFinished
	}

	if err := that.place(that.current, coord); err != nil {
		return err
	}

	return that.applyBotMoves()
}

// place puts a stone for player and either ends the game or passes the turn.
func (that *Session) place(player entity.Player, coord entity.Coordinate) error {
	if err := that.board.Place(player, coord); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.lastMove = &coord

	if that.winner = that.result(entity.Move{Player: player, Coord: coord}); that.winner != "" {
		that.logger.Info("game finished", "winner", that.winner, "moves", len(that.board.History()))
		return nil
	}

	that.current = player.Opponent()

	return nil
}

// result returns the winner after move, ResultDraw on a full board, "" otherwise.
func (that *Session) result(move entity.Move) string {
	switch {
	case that.board.CheckVictory(move.Coord, move.Player):
		return string(move.Player)
	case that.board.IsFull():
		return ResultDraw
	default:
		return ""
	}
}

// applyBotMoves plays for the bot for as long as it is the bot's turn.
func (that *Session) applyBotMoves() error {
	log := that.logger.With("method", "applyBotMoves")

	for that.winner == "" {
		ai, enabled := that.aiMode.Player()
		if !enabled || that.current != ai {
			return nil
		}

		coord, err := that.bot.SelectMove(that.board, ai, ai.Opponent())
		if errors.Is(err, apperror.ErrNoMovesAvailable) {
			that.winner = ResultDraw
			return nil
		}

		if err != nil {
			return fmt.Errorf("bot failed to select move: %w", err)
		}

		if err = that.place(ai, coord); err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved", "player", ai, "coord", notation.FormatCoordinate(coord))
	}

	return nil
}

func (that *Session) view() View {
	view := View{
		Size:          that.board.Size(),
		Board:         that.board.Grid(),
		CurrentPlayer: that.current,
		AISide:        that.aiMode,
		Winner:        that.winner,
		IsFull:        that.board.IsFull(),
		CanUndo:       len(that.board.History()) > 0,
	}

	if that.lastMove != nil {
		last := *that.lastMove
		view.LastMove = &last
	}

	return view
}
