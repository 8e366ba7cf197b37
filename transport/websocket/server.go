package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

type gameUseCase interface {
	LoadOrCreateSession(ctx context.Context, id string, difficulty entity.Difficulty, playerName string) (entity.Session, error)
	SaveSession(ctx context.Context, session entity.Session) error
	DeleteSession(ctx context.Context, id string) error

	PlayHuman(ctx context.Context, session entity.Session, cell int) entity.Session
	PlayComputer(ctx context.Context, session entity.Session) entity.Session

	Reset(session entity.Session) entity.Session
	SetDifficulty(session entity.Session, difficulty entity.Difficulty) entity.Session
	SetPlayerName(session entity.Session, name string) entity.Session
	ResetTrophies(session entity.Session) entity.Session
}

type leaderboardUseCase interface {
	Top(ctx context.Context, n int) ([]entity.ScoreEntry, error)
}

type handlerFunc func(ctx context.Context, conn *connection, payload *Payload) error

type Server struct {
	logger      *slog.Logger
	game        gameUseCase
	leaderboard leaderboardUseCase
	moveDelay   time.Duration

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

// New - moveDelay is the pause before the computer's reply is pushed.
func New(logger *slog.Logger, game gameUseCase, leaderboard leaderboardUseCase, moveDelay time.Duration) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		game:        game,
		leaderboard: leaderboard,
		moveDelay:   moveDelay,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleGameReset
	server.handlers[actionGameDiff] = server.handleGameDifficulty
	server.handlers[actionPlayerName] = server.handlePlayerName
	server.handlers[actionTrophiesReset] = server.handleTrophiesReset
	server.handlers[actionLeaderboard] = server.handleLeaderboard
	server.handlers[actionGameLeave] = server.handleGameLeave

	return server
}

func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", that.upgradeToWebSocket).Methods(http.MethodGet)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves it until the client leaves.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	conn := newConnection(ws)

	defer func() {
		cancel()
		conn.close()
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(ctx, conn)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ws.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(conn, fmt.Sprintf("unknown action %q", message.Action))
			continue
		}

		var payload Payload
		if len(message.Payload) > 0 {
			if err := json.Unmarshal(message.Payload, &payload); err != nil {
				log.Warn("failed to unmarshal payload", "action", message.Action, "error", err)
				that.sendError(conn, "malformed payload")
				continue
			}
		}

		if err := handler(ctx, conn, &payload); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendState(conn *connection, session entity.Session) error {
	return conn.send(actionGameState, ResponsePayload{Game: newGameState(session)})
}

func (that *Server) sendError(conn *connection, text string) {
	if err := conn.send(actionError, ResponsePayload{Error: text}); err != nil {
		that.logger.Error("failed to send error response", "error", err)
	}
}
