package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Score categories. Each one is counted at most once per cell and the sum of
// all lower categories stays below the next higher one, so the ordering
// win > block five > block four > block open three > neighbours > noise holds.
const (
	scoreWin        = 1_000_000
	scoreBlockFive  = 500_000
	scoreBlockFour  = 50_000
	scoreBlockThree = 5_000
	scoreNeighbour  = 10
)

// RandSource is the randomness used to break ties. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

type BotService interface {
	SelectMove(board *entity.Board, ai, opponent entity.Player) (entity.Coordinate, error)
}

type botService struct {
	rnd RandSource
}

// NewBotService returns a bot seeded from the clock.
func NewBotService() BotService {
	return NewBotServiceWithSource(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // it's ok
}

func NewBotServiceWithSource(rnd RandSource) BotService {
	return &botService{rnd: rnd}
}

func (that *botService) SelectMove(board *entity.Board, ai, opponent entity.Player) (entity.Coordinate, error) {
	if board.IsFull() {
		return entity.Coordinate{}, apperror.ErrNoMovesAvailable
	}

	center := entity.Coordinate{Row: board.Size() / 2, Col: board.Size() / 2}
	if _, played := board.LastMove(); !played && board.IsEmpty(center) {
		return center, nil
	}

	var (
		best      []entity.Coordinate
		bestScore float64
	)

	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			coord := entity.Coordinate{Row: row, Col: col}
			if !board.IsEmpty(coord) {
				continue
			}

			score, err := that.scoreCell(board, coord, ai, opponent)
			if err != nil {
				return entity.Coordinate{}, fmt.Errorf("failed to score cell: %w", err)
			}

			switch {
			case len(best) == 0 || score > bestScore:
				best = append(best[:0], coord)
				bestScore = score
			case score == bestScore:
				best = append(best, coord)
			}
		}
	}

	return best[that.rnd.Intn(len(best))], nil
}

// scoreCell rates an empty cell for the ai player.
func (that *botService) scoreCell(board *entity.Board, coord entity.Coordinate, ai, opponent entity.Player) (float64, error) {
	own, err := board.LineDetails(coord, ai)
	if err != nil {
		return 0, err
	}

	theirs, err := board.LineDetails(coord, opponent)
	if err != nil {
		return 0, err
	}

	var win, blockFive, blockFour, blockThree bool

	for i := range own {
		if own[i].Length >= entity.WinLength {
			win = true
		}

		line := theirs[i]
		switch {
		case line.Length >= entity.WinLength:
			blockFive = true
		case line.Length == entity.WinLength-1 && line.OpenEnds() > 0:
			blockFour = true
		case line.Length == entity.WinLength-2 && line.OpenEnds() == 2:
			blockThree = true
		}
	}

	score := 0
	if win {
		score += scoreWin
	}
	if blockFive {
		score += scoreBlockFive
	}
	if blockFour {
		score += scoreBlockFour
	}
	if blockThree {
		score += scoreBlockThree
	}

	score += scoreNeighbour * occupiedNeighbours(board, coord)

	return float64(score) + that.rnd.Float64(), nil
}

func occupiedNeighbours(board *entity.Board, coord entity.Coordinate) int {
	count := 0

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if _, ok := board.Get(entity.Coordinate{Row: coord.Row + dr, Col: coord.Col + dc}); ok {
				count++
			}
		}
	}

	return count
}
