package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

func TestRewardTable_Reward(t *testing.T) {
	rewards := DefaultRewards()

	assert.Equal(t, 1, rewards.Reward(entity.EasyDifficulty))
	assert.Equal(t, 5, rewards.Reward(entity.HardDifficulty))
	assert.Equal(t, 1000, rewards.Reward(entity.ImpossibleDifficulty))

	t.Run("Missing or negative tier earns nothing", func(t *testing.T) {
		custom := RewardTable{entity.EasyDifficulty: -3}

		assert.Zero(t, custom.Reward(entity.EasyDifficulty))
		assert.Zero(t, custom.Reward(entity.HardDifficulty))
	})
}
