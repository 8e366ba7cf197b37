package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

func TestLeaderboard_Top(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the configured size when none is given", func(t *testing.T) {
		// Given: a store holding two scores
		scores := &mockScoreGateway{}
		entries := []entity.ScoreEntry{{Name: "alice", Trophies: 1005}, {Name: "bob", Trophies: 5}}
		scores.On("ListTop", ctx, 10).Return(entries, nil).Once()

		// When: asking for the default page
		top, err := NewLeaderboard(scores, 10).Top(ctx, 0)

		// Then: the store's order is returned as is
		require.NoError(t, err)
		assert.Equal(t, entries, top)
		scores.AssertExpectations(t)
	})

	t.Run("Large limits are capped", func(t *testing.T) {
		scores := &mockScoreGateway{}
		scores.On("ListTop", ctx, maxLeaderboardSize).Return([]entity.ScoreEntry{}, nil).Once()

		_, err := NewLeaderboard(scores, 10).Top(ctx, 5000)

		require.NoError(t, err)
		scores.AssertExpectations(t)
	})

	t.Run("Store error is wrapped", func(t *testing.T) {
		scores := &mockScoreGateway{}
		scores.On("ListTop", ctx, 3).Return(nil, errRedisDown).Once()

		top, err := NewLeaderboard(scores, 10).Top(ctx, 3)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, top)
	})
}

func TestLeaderboard_PlayerScore(t *testing.T) {
	ctx := context.Background()

	t.Run("Known player", func(t *testing.T) {
		scores := &mockScoreGateway{}
		scores.On("GetScore", ctx, "alice").Return(12, nil).Once()

		entry, err := NewLeaderboard(scores, 0).PlayerScore(ctx, " alice ")

		require.NoError(t, err)
		assert.Equal(t, entity.ScoreEntry{Name: "alice", Trophies: 12}, entry)
	})

	t.Run("Unknown player", func(t *testing.T) {
		scores := &mockScoreGateway{}
		scores.On("GetScore", ctx, "nobody").Return(0, apperror.ErrScoreNotFound).Once()

		_, err := NewLeaderboard(scores, 0).PlayerScore(ctx, "nobody")

		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := NewLeaderboard(&mockScoreGateway{}, 0).PlayerScore(ctx, "  ")

		require.ErrorIs(t, err, apperror.ErrEmptyPlayerName)
	})
}
