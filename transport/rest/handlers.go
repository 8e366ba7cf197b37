package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
)

type handlers struct {
	logger      *slog.Logger
	leaderboard leaderboardUseCase
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

// top - GET /leaderboard?limit=n, the configured size when limit is absent.
func (that *handlers) top(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "top")

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := that.leaderboard.Top(r.Context(), limit)
	if err != nil {
		log.Error("failed to list leaderboard", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load leaderboard"})
		return
	}

	that.writeJSON(w, http.StatusOK, entries)
}

func (that *handlers) score(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "score")

	entry, err := that.leaderboard.PlayerScore(r.Context(), chi.URLParam(r, "name"))
	switch {
	case errors.Is(err, apperror.ErrEmptyPlayerName):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrScoreNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrScoreNotFound.Error()})
	case err != nil:
		log.Error("failed to get score", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load score"})
	default:
		that.writeJSON(w, http.StatusOK, entry)
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
