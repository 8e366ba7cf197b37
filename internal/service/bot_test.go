package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/tictactoe"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

type fixedPolicy int

func (that fixedPolicy) SelectMove(entity.Board) (int, bool) {
	return int(that), true
}

func TestRandomPolicy_SelectMove(t *testing.T) {
	t.Run("Always returns an empty cell, uniformly", func(t *testing.T) {
		// Given: a board with five empty cells and a seeded source
		board := entity.Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}
		policy := NewRandomPolicy(rand.New(rand.NewSource(42)))

		const trials = 10000
		counts := map[int]int{}

		// When: selecting many moves
		for range trials {
			cell, ok := policy.SelectMove(board)
			require.True(t, ok)
			require.True(t, board.IsEmpty(cell), "cell %d is occupied", cell)
			counts[cell]++
		}

		// Then: every empty cell is hit close to trials/5 times
		expected := trials / len(board.EmptyCells())
		require.Len(t, counts, 5)
		for cell, count := range counts {
			assert.InDelta(t, expected, count, float64(expected)/10, "cell %d", cell)
		}
	})

	t.Run("Full board has no move", func(t *testing.T) {
		board := entity.Board{
			o, x, o,
			o, x, x,
			x, o, x,
		}

		cell, ok := NewRandomPolicy(nil).SelectMove(board)

		assert.False(t, ok)
		assert.Equal(t, entity.NoMove, cell)
	})
}

func TestHeuristicPolicy_SelectMove(t *testing.T) {
	policy := NewHeuristicPolicy(o, fixedPolicy(8))

	t.Run("Win is taken before block", func(t *testing.T) {
		// Given: X threatens the top row and O can finish the middle row
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: the heuristic picks a move for O
		cell, ok := policy.SelectMove(board)

		// Then: O wins instead of blocking
		require.True(t, ok)
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks when there is no win", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			o, e, e,
			e, e, e,
		}

		cell, ok := policy.SelectMove(board)

		require.True(t, ok)
		assert.Equal(t, 2, cell)
	})

	t.Run("Only the first qualifying line is used", func(t *testing.T) {
		// Given: X threatens both the top row and the left column
		board := entity.Board{
			x, x, e,
			x, o, e,
			e, e, o,
		}

		cell, ok := policy.SelectMove(board)

		// Then: the row comes first in scan order
		require.True(t, ok)
		assert.Equal(t, 2, cell)
	})

	t.Run("Falls back when nothing is threatened", func(t *testing.T) {
		board := entity.Board{x}

		cell, ok := policy.SelectMove(board)

		require.True(t, ok)
		assert.Equal(t, 8, cell)
	})
}

func TestSearchPolicy_SelectMove(t *testing.T) {
	t.Run("Plays the quickest win", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		cell, ok := NewSearchPolicy(o, tictactoe.Unbounded).SelectMove(board)

		require.True(t, ok)
		assert.Equal(t, 5, cell)
	})

	t.Run("Full board is a no-op", func(t *testing.T) {
		board := entity.Board{
			o, x, o,
			o, x, x,
			x, o, x,
		}

		_, ok := NewSearchPolicy(o, 3).SelectMove(board)

		assert.False(t, ok)
	})
}

func TestNewBotService(t *testing.T) {
	t.Run("Dispatches each difficulty", func(t *testing.T) {
		// Given: the default configuration
		bots, err := NewBotService(BotConfig{}, nil)
		require.NoError(t, err)

		// Then: easy is random and the other tiers search
		assert.IsType(t, &RandomPolicy{}, bots.PolicyFor(entity.EasyDifficulty))
		assert.Equal(t, NewSearchPolicy(o, DefaultHardPlyLimit), bots.PolicyFor(entity.HardDifficulty))
		assert.Equal(t, NewSearchPolicy(o, tictactoe.Unbounded), bots.PolicyFor(entity.ImpossibleDifficulty))
	})

	t.Run("Easy can be switched to the heuristic", func(t *testing.T) {
		bots, err := NewBotService(BotConfig{EasyPolicy: HeuristicPolicyName, HardPlyLimit: 2}, nil)
		require.NoError(t, err)

		assert.IsType(t, &HeuristicPolicy{}, bots.PolicyFor(entity.EasyDifficulty))
		assert.Equal(t, NewSearchPolicy(o, 2), bots.PolicyFor(entity.HardDifficulty))
	})

	t.Run("Unknown easy policy is rejected", func(t *testing.T) {
		_, err := NewBotService(BotConfig{EasyPolicy: "clairvoyant"}, nil)

		require.ErrorIs(t, err, apperror.ErrUnknownPolicy)
	})
}
