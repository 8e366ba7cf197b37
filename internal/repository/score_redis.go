package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

const leaderboardKey = "leaderboard"

type redisScores struct {
	client *redis.Client
}

// NewRedisScoreRepository keeps the leaderboard in a sorted set, member = name, score = trophies.
func NewRedisScoreRepository(client *redis.Client) ScoreRepository {
	return &redisScores{
		client: client,
	}
}

func (that *redisScores) UpsertScore(ctx context.Context, name string, trophies int) error {
	if err := validateScore(name, trophies); err != nil {
		return err
	}

	err := that.client.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(trophies), Member: name}).Err()
	if err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *redisScores) ListTop(ctx context.Context, n int) ([]entity.ScoreEntry, error) {
	if n <= 0 {
		return []entity.ScoreEntry{}, nil
	}

	response, err := that.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	entries := make([]entity.ScoreEntry, 0, len(response))
	for _, z := range response {
		name, ok := z.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, entity.ScoreEntry{Name: name, Trophies: int(z.Score)})
	}

	return entries, nil
}

func (that *redisScores) GetScore(ctx context.Context, name string) (int, error) {
	score, err := that.client.ZScore(ctx, leaderboardKey, name).Result()

	if errors.Is(err, redis.Nil) {
		return 0, apperror.ErrScoreNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get score: %w", err)
	}

	return int(score), nil
}
