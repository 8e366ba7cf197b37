package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/tictactoe"
)

const (
	RandomPolicyName    = "random"
	HeuristicPolicyName = "heuristic"

	DefaultHardPlyLimit = 3
)

// Policy picks the computer's next cell. ok is false when there is nothing to play.
type Policy interface {
	SelectMove(board entity.Board) (cell int, ok bool)
}

// BotService maps a difficulty to the policy that plays it.
type BotService interface {
	PolicyFor(difficulty entity.Difficulty) Policy
}

type BotConfig struct {
	EasyPolicy   string
	HardPlyLimit int
}

type botService struct {
	policies map[entity.Difficulty]Policy
}

func NewBotService(conf BotConfig, rnd *rand.Rand) (BotService, error) {
	random := NewRandomPolicy(rnd)

	var easy Policy
	switch conf.EasyPolicy {
	case "", RandomPolicyName:
		easy = random
	case HeuristicPolicyName:
		easy = NewHeuristicPolicy(entity.Computer, random)
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPolicy, conf.EasyPolicy)
	}

	hardLimit := conf.HardPlyLimit
	if hardLimit <= 0 {
		hardLimit = DefaultHardPlyLimit
	}

	return &botService{
		policies: map[entity.Difficulty]Policy{
			entity.EasyDifficulty:       easy,
			entity.HardDifficulty:       NewSearchPolicy(entity.Computer, hardLimit),
			entity.ImpossibleDifficulty: NewSearchPolicy(entity.Computer, tictactoe.Unbounded),
		},
	}, nil
}

func (that *botService) PolicyFor(difficulty entity.Difficulty) Policy {
	if policy, ok := that.policies[difficulty]; ok {
		return policy
	}

	return that.policies[entity.EasyDifficulty]
}

// RandomPolicy plays a uniformly chosen empty cell.
type RandomPolicy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPolicy uses rnd when given, the global source otherwise.
func NewRandomPolicy(rnd *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rnd: rnd}
}

func (that *RandomPolicy) SelectMove(board entity.Board) (int, bool) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.NoMove, false
	}

	return availableCells[that.intn(len(availableCells))], true
}

func (that *RandomPolicy) intn(n int) int {
	if that.rnd == nil {
		return rand.Intn(n) //nolint: gosec // it's ok
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}

// HeuristicPolicy completes its own line, else blocks the opponent's, else falls back.
type HeuristicPolicy struct {
	mark     entity.Mark
	fallback Policy
}

func NewHeuristicPolicy(mark entity.Mark, fallback Policy) *HeuristicPolicy {
	return &HeuristicPolicy{mark: mark, fallback: fallback}
}

func (that *HeuristicPolicy) SelectMove(board entity.Board) (int, bool) {
	if cell, ok := completingCell(&board, that.mark); ok {
		return cell, true
	}

	if cell, ok := completingCell(&board, that.mark.Opponent()); ok {
		return cell, true
	}

	return that.fallback.SelectMove(board)
}

// completingCell - the empty cell of the first line holding two of mark.
func completingCell(board *entity.Board, mark entity.Mark) (int, bool) {
	for _, line := range entity.Lines {
		owned, free := 0, entity.NoMove

		for _, cell := range line {
			switch board.At(cell) {
			case mark:
				owned++
			case entity.Empty:
				free = cell
			}
		}

		if owned == 2 && free != entity.NoMove {
			return free, true
		}
	}

	return entity.NoMove, false
}

// SearchPolicy plays the minimax best move within plyLimit.
type SearchPolicy struct {
	mark     entity.Mark
	plyLimit int
}

func NewSearchPolicy(mark entity.Mark, plyLimit int) *SearchPolicy {
	return &SearchPolicy{mark: mark, plyLimit: plyLimit}
}

func (that *SearchPolicy) SelectMove(board entity.Board) (int, bool) {
	result := tictactoe.BestMove(board, that.mark, that.mark, that.plyLimit)
	if result.Move == entity.NoMove {
		return entity.NoMove, false
	}

	return result.Move, true
}
