package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
)

// Difficulty selects the computer's move policy and the reward tier.
type Difficulty uint8

const (
	EasyDifficulty Difficulty = iota
	HardDifficulty
	ImpossibleDifficulty
)

var Difficulties = []Difficulty{EasyDifficulty, HardDifficulty, ImpossibleDifficulty}

func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return EasyDifficulty, nil
	case "hard":
		return HardDifficulty, nil
	case "impossible":
		return ImpossibleDifficulty, nil
	default:
		return EasyDifficulty, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

func (that Difficulty) String() string {
	switch that {
	case EasyDifficulty:
		return "easy"
	case HardDifficulty:
		return "hard"
	case ImpossibleDifficulty:
		return "impossible"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(that))
	}
}

func (that Difficulty) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Difficulty) UnmarshalText(text []byte) error {
	difficulty, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}

	*that = difficulty

	return nil
}
