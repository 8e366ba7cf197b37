package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

type leaderboardUseCase interface {
	Top(ctx context.Context, n int) ([]entity.ScoreEntry, error)
	PlayerScore(ctx context.Context, name string) (entity.ScoreEntry, error)
}

// NewRouter wires routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, leaderboard leaderboardUseCase) http.Handler {
	h := &handlers{
		logger:      logger.With("component", "rest"),
		leaderboard: leaderboard,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)
	r.Get("/leaderboard", h.top)
	r.Get("/scores/{name}", h.score)

	return r
}

// Start - serves handler on port until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
