package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/config"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/repository"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/service"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-trophy/transport/rest"
	"github.com/rocketscienceinc/tictactoe-trophy/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type stores struct {
	scores   repository.ScoreRepository
	sessions repository.SessionRepository
	close    func()
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	st, err := openStores(ctx, log, conf)
	if err != nil {
		return err
	}
	defer st.close()

	bots, err := service.NewBotService(conf.Bot.BotConfig(), nil)
	if err != nil {
		return fmt.Errorf("could not create bot service: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, bots, st.scores, st.sessions, usecase.GameManagerOptions{
		Rewards:      conf.Rewards.Table(),
		ScoreTimeout: conf.ScoreTimeout,
	})
	leaderboard := usecase.NewLeaderboard(st.scores, conf.LeaderboardSize)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, leaderboard)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, leaderboard, conf.Bot.MoveDelay)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// openStores picks the score and session stores for the configured storage.
// SQLite keeps scores only; sessions then live in memory.
func openStores(ctx context.Context, log *slog.Logger, conf *config.Config) (*stores, error) {
	switch conf.Storage {
	case config.RedisStorage:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &stores{
			scores:   repository.NewRedisScoreRepository(redisStorage),
			sessions: repository.NewSessionRepository(redisStorage, conf.SessionTTL),
			close: func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			},
		}, nil

	case config.SQLiteStorage:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return &stores{
			scores:   repository.NewSQLiteScoreRepository(sqliteStorage.Connection),
			sessions: repository.NewMemorySessionRepository(),
			close: func() {
				if err = sqliteStorage.Close(); err != nil {
					log.Error("could not close sqlite storage", "error", err)
				}
			},
		}, nil

	default:
		return &stores{
			scores:   repository.NewMemoryScoreRepository(),
			sessions: repository.NewMemorySessionRepository(),
			close:    func() {},
		}, nil
	}
}
