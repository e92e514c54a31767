package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Player is the colour of a stone. The zero value is not a player.
type Player string

const (
	Black Player = "B"
	White Player = "W"
)

// AIMode tells which side, if any, is played by the bot.
type AIMode string

const (
	AIOff   AIMode = "off"
	AIBlack AIMode = "black"
	AIWhite AIMode = "white"
)

func ParsePlayer(value string) (Player, error) {
	switch player := Player(strings.ToUpper(strings.TrimSpace(value))); player {
	case Black, White:
		return player, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, value)
	}
}

func (that Player) IsValid() bool {
	return that == Black || that == White
}

// Opponent returns the other colour.
func (that Player) Opponent() Player {
	if that == Black {
		return White
	}
	return Black
}

func (that Player) String() string {
	return string(that)
}

func ParseAIMode(value string) (AIMode, error) {
	switch mode := AIMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case AIOff, AIBlack, AIWhite:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidAIMode, value)
	}
}

// Player returns the side controlled by the bot, false when the bot is off.
func (that AIMode) Player() (Player, bool) {
	switch that {
	case AIBlack:
		return Black, true
	case AIWhite:
		return White, true
	default:
		return "", false
	}
}
