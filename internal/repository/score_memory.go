package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

type memoryScores struct {
	mu     sync.RWMutex
	scores map[string]int
}

// NewMemoryScoreRepository is used when no external store is configured.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScores{
		scores: make(map[string]int),
	}
}

func (that *memoryScores) UpsertScore(_ context.Context, name string, trophies int) error {
	if err := validateScore(name, trophies); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores[name] = trophies

	return nil
}

func (that *memoryScores) ListTop(_ context.Context, n int) ([]entity.ScoreEntry, error) {
	that.mu.RLock()
	entries := make([]entity.ScoreEntry, 0, len(that.scores))
	for name, trophies := range that.scores {
		entries = append(entries, entity.ScoreEntry{Name: name, Trophies: trophies})
	}
	that.mu.RUnlock()

	slices.SortFunc(entries, func(a, b entity.ScoreEntry) int {
		if c := cmp.Compare(b.Trophies, a.Trophies); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	if n < 0 {
		n = 0
	}

	return entries[:min(n, len(entries))], nil
}

func (that *memoryScores) GetScore(_ context.Context, name string) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	trophies, ok := that.scores[name]
	if !ok {
		return 0, apperror.ErrScoreNotFound
	}

	return trophies, nil
}
