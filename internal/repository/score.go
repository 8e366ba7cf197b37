package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

// ScoreRepository stores the last reported trophy total per player name.
type ScoreRepository interface {
	UpsertScore(ctx context.Context, name string, trophies int) error
	ListTop(ctx context.Context, n int) ([]entity.ScoreEntry, error)
	GetScore(ctx context.Context, name string) (int, error)
}

func validateScore(name string, trophies int) error {
	if strings.TrimSpace(name) == "" {
		return apperror.ErrEmptyPlayerName
	}

	if trophies < 0 {
		return fmt.Errorf("%w: %d", apperror.ErrNegativeTrophies, trophies)
	}

	return nil
}
