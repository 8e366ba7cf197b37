package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

const maxLeaderboardSize = 100

// Leaderboard is the read side of the score store.
type Leaderboard struct {
	scores      scoreGateway
	defaultSize int
}

func NewLeaderboard(scores scoreGateway, defaultSize int) *Leaderboard {
	if defaultSize <= 0 {
		defaultSize = 10
	}

	return &Leaderboard{
		scores:      scores,
		defaultSize: defaultSize,
	}
}

// Top returns at most n entries; n <= 0 means the configured size.
func (that *Leaderboard) Top(ctx context.Context, n int) ([]entity.ScoreEntry, error) {
	if n <= 0 {
		n = that.defaultSize
	}

	n = min(n, maxLeaderboardSize)

	entries, err := that.scores.ListTop(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list top scores: %w", err)
	}

	return entries, nil
}

func (that *Leaderboard) PlayerScore(ctx context.Context, name string) (entity.ScoreEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.ScoreEntry{}, apperror.ErrEmptyPlayerName
	}

	trophies, err := that.scores.GetScore(ctx, name)
	if err != nil {
		return entity.ScoreEntry{}, fmt.Errorf("failed to get score of %s: %w", name, err)
	}

	return entity.ScoreEntry{Name: name, Trophies: trophies}, nil
}
