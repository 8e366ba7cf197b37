package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/service"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/tictactoe"
)

type scoreGateway interface {
	UpsertScore(ctx context.Context, name string, trophies int) error
	ListTop(ctx context.Context, n int) ([]entity.ScoreEntry, error)
	GetScore(ctx context.Context, name string) (int, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	PolicyFor(difficulty entity.Difficulty) service.Policy
}

// GameManager drives the turn state machine of a session.
// Every transition takes a session and returns the next one; invalid input returns it unchanged.
type GameManager struct {
	logger *slog.Logger

	bots         botService
	rewards      service.RewardTable
	scores       scoreGateway
	sessionRepo  sessionRepo
	scoreTimeout time.Duration
}

type GameManagerOptions struct {
	Rewards      service.RewardTable
	ScoreTimeout time.Duration
}

func NewGameManager(logger *slog.Logger, bots botService, scores scoreGateway, sessionRepo sessionRepo, opts GameManagerOptions) *GameManager {
	rewards := opts.Rewards
	if rewards == nil {
		rewards = service.DefaultRewards()
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		bots:         bots,
		rewards:      rewards,
		scores:       scores,
		sessionRepo:  sessionRepo,
		scoreTimeout: opts.ScoreTimeout,
	}
}

func (that *GameManager) NewSession(difficulty entity.Difficulty, playerName string) entity.Session {
	session := entity.NewSession(uuid.NewString(), difficulty)
	session.PlayerName = strings.TrimSpace(playerName)

	return session
}

// PlayHuman - places X at cell when the human is to move and the cell is free.
func (that *GameManager) PlayHuman(ctx context.Context, session entity.Session, cell int) entity.Session {
	if !session.IsAwaitingHuman() || !session.Board.IsEmpty(cell) {
		return session
	}

	session.Board.Place(cell, entity.Human)
	session.LastMove = cell
	session.Phase = entity.PhaseComputerThinking

	return that.settle(ctx, session)
}

// PlayComputer - lets the policy of the current difficulty answer the human's move.
func (that *GameManager) PlayComputer(ctx context.Context, session entity.Session) entity.Session {
	if !session.IsComputerThinking() {
		return session
	}

	cell, ok := that.bots.PolicyFor(session.Difficulty).SelectMove(session.Board)
	if !ok || !session.Board.IsEmpty(cell) {
		that.logger.Warn("computer has no move", "session", session.ID, "board", session.Board.String())
		return session
	}

	session.Board.Place(cell, entity.Computer)
	session.LastMove = cell
	session.Phase = entity.PhaseAwaitingHuman

	return that.settle(ctx, session)
}

// Reset starts a new game in the same session; trophies and name are kept.
func (that *GameManager) Reset(session entity.Session) entity.Session {
	next := entity.NewSession(session.ID, session.Difficulty)
	next.PlayerName = session.PlayerName
	next.Trophies = session.Trophies

	return next
}

// SetDifficulty takes effect on the computer's next move.
func (that *GameManager) SetDifficulty(session entity.Session, difficulty entity.Difficulty) entity.Session {
	session.Difficulty = difficulty
	return session
}

func (that *GameManager) SetPlayerName(session entity.Session, name string) entity.Session {
	session.PlayerName = strings.TrimSpace(name)
	return session
}

func (that *GameManager) ResetTrophies(session entity.Session) entity.Session {
	session.Trophies = 0
	return session
}

// settle moves a session into Terminal when the last move ended the game.
func (that *GameManager) settle(ctx context.Context, session entity.Session) entity.Session {
	outcome := tictactoe.EvaluateTerminal(&session.Board)

	switch outcome.Result {
	case tictactoe.ResultWin:
		session.Phase = entity.PhaseTerminal
		session.Status = entity.StatusWon
		session.Winner = outcome.Winner
	case tictactoe.ResultDraw:
		session.Phase = entity.PhaseTerminal
		session.Status = entity.StatusDrawn
	case tictactoe.ResultNone:
		return session
	}

	log := that.logger.With("session", session.ID)
	log.Info("game finished", "status", session.StatusText(), "difficulty", session.Difficulty.String())

	if session.Status == entity.StatusWon && session.Winner == entity.Human {
		session.Trophies += that.rewards.Reward(session.Difficulty)
		that.persistScore(ctx, session)
	}

	return session
}

// persistScore is best effort: a failed write is logged and never retried.
func (that *GameManager) persistScore(ctx context.Context, session entity.Session) {
	log := that.logger.With("method", "persistScore", "session", session.ID)

	if !session.HasPlayerName() {
		log.Debug("no player name, score kept in memory", "trophies", session.Trophies)
		return
	}

	if that.scoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.scoreTimeout)
		defer cancel()
	}

	if err := that.scores.UpsertScore(ctx, session.PlayerName, session.Trophies); err != nil {
		log.Error("failed to save score", "player", session.PlayerName, "error", err)
		return
	}

	log.Info("score saved", "player", session.PlayerName, "trophies", session.Trophies)
}

// LoadOrCreateSession - restores a stored session or starts a new one.
func (that *GameManager) LoadOrCreateSession(ctx context.Context, id string, difficulty entity.Difficulty, playerName string) (entity.Session, error) {
	if id == "" {
		return that.NewSession(difficulty, playerName), nil
	}

	stored, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return that.NewSession(difficulty, playerName), nil
	}

	if err != nil {
		return entity.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	session := *stored
	if name := strings.TrimSpace(playerName); name != "" {
		session.PlayerName = name
	}

	// X always moves first, so X leads O by zero or one mark.
	if lead := session.Board.Count(entity.Human) - session.Board.Count(entity.Computer); lead < 0 || lead > 1 {
		that.logger.Warn("stored board is inconsistent, starting a new game", "session", id, "board", session.Board.String())
		session = that.Reset(session)
	}

	return session, nil
}

func (that *GameManager) SaveSession(ctx context.Context, session entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, &session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (that *GameManager) DeleteSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
