package service

import "github.com/rocketscienceinc/tictactoe-trophy/internal/entity"

// RewardTable holds the trophies a human earns for beating each difficulty.
type RewardTable map[entity.Difficulty]int

// DefaultRewards - one trophy for easy, five for hard, a thousand for impossible.
func DefaultRewards() RewardTable {
	return RewardTable{
		entity.EasyDifficulty:       1,
		entity.HardDifficulty:       5,
		entity.ImpossibleDifficulty: 1000,
	}
}

func (that RewardTable) Reward(difficulty entity.Difficulty) int {
	if reward := that[difficulty]; reward > 0 {
		return reward
	}

	return 0
}
