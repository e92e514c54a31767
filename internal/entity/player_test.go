package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayer(t *testing.T) {
	player, err := ParsePlayer("b")
	require.NoError(t, err)
	assert.Equal(t, Black, player)

	player, err = ParsePlayer(" W ")
	require.NoError(t, err)
	assert.Equal(t, White, player)

	_, err = ParsePlayer("X")
	require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
}

func TestAIMode(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		mode, err := ParseAIMode("White")
		require.NoError(t, err)
		assert.Equal(t, AIWhite, mode)

		_, err = ParseAIMode("both")
		require.ErrorIs(t, err, apperror.ErrInvalidAIMode)
	})

	t.Run("Player", func(t *testing.T) {
		player, ok := AIBlack.Player()
		assert.True(t, ok)
		assert.Equal(t, Black, player)

		player, ok = AIWhite.Player()
		assert.True(t, ok)
		assert.Equal(t, White, player)

		_, ok = AIOff.Player()
		assert.False(t, ok)
	})
}
