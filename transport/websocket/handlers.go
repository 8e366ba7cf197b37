package websocket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, conn *connection, payload *Payload) error {
	log := that.logger.With("method", "handleConnect")

	difficulty := entity.EasyDifficulty
	if payload.Difficulty != "" {
		parsed, err := entity.ParseDifficulty(payload.Difficulty)
		if err != nil {
			that.sendError(conn, err.Error())
			return nil
		}
		difficulty = parsed
	}

	var playerName string
	if payload.Player != nil {
		playerName = payload.Player.Name
	}

	session, err := that.game.LoadOrCreateSession(ctx, payload.SessionID, difficulty, playerName)
	if err != nil {
		that.sendError(conn, "failed to load session")
		return fmt.Errorf("failed to load session %q: %w", payload.SessionID, err)
	}

	if payload.Difficulty != "" {
		session = that.game.SetDifficulty(session, difficulty)
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()

	conn.cancelPending()

	log.Info("player connected", "sessionID", session.ID, "resumed", session.ID == payload.SessionID)

	return that.commit(ctx, conn, session, true)
}

func (that *Server) handleGameTurn(ctx context.Context, conn *connection, payload *Payload) error {
	if payload.Cell == nil {
		that.sendError(conn, "cell is required")
		return nil
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.session == nil {
		return that.notConnected(conn)
	}

	session := that.game.PlayHuman(ctx, *conn.session, *payload.Cell)

	return that.commit(ctx, conn, session, true)
}

func (that *Server) handleGameReset(ctx context.Context, conn *connection, _ *Payload) error {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.session == nil {
		return that.notConnected(conn)
	}

	conn.cancelPending()

	return that.commit(ctx, conn, that.game.Reset(*conn.session), false)
}

func (that *Server) handleGameDifficulty(ctx context.Context, conn *connection, payload *Payload) error {
	difficulty, err := entity.ParseDifficulty(payload.Difficulty)
	if err != nil {
		that.sendError(conn, err.Error())
		return nil
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.session == nil {
		return that.notConnected(conn)
	}

	// a pending computer move picks the new difficulty up when it fires
	return that.commit(ctx, conn, that.game.SetDifficulty(*conn.session, difficulty), false)
}

func (that *Server) handlePlayerName(ctx context.Context, conn *connection, payload *Payload) error {
	name := strings.TrimSpace(payload.Name)
	if name == "" && payload.Player != nil {
		name = strings.TrimSpace(payload.Player.Name)
	}

	if name == "" {
		that.sendError(conn, "name is required")
		return nil
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.session == nil {
		return that.notConnected(conn)
	}

	return that.commit(ctx, conn, that.game.SetPlayerName(*conn.session, name), false)
}

func (that *Server) handleTrophiesReset(ctx context.Context, conn *connection, _ *Payload) error {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.session == nil {
		return that.notConnected(conn)
	}

	return that.commit(ctx, conn, that.game.ResetTrophies(*conn.session), false)
}

func (that *Server) handleLeaderboard(ctx context.Context, conn *connection, payload *Payload) error {
	entries, err := that.leaderboard.Top(ctx, payload.Limit)
	if err != nil {
		that.sendError(conn, "failed to load leaderboard")
		return fmt.Errorf("failed to list top scores: %w", err)
	}

	return conn.send(actionLeaderboard, ResponsePayload{Leaderboard: entries})
}

// handleGameLeave forgets the session; the connection must send connect again to play.
func (that *Server) handleGameLeave(ctx context.Context, conn *connection, _ *Payload) error {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.session == nil {
		return that.notConnected(conn)
	}

	conn.cancelPending()

	sessionID := conn.session.ID
	conn.session = nil

	if err := that.game.DeleteSession(ctx, sessionID); err != nil {
		that.sendError(conn, "failed to leave the game")
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}

	that.logger.Info("player left", "sessionID", sessionID)

	return conn.send(actionGameLeave, ResponsePayload{})
}

// commit stores the new session, pushes it to the client and, when it is the
// computer's turn, schedules its reply. Callers hold conn.mu.
func (that *Server) commit(ctx context.Context, conn *connection, session entity.Session, schedule bool) error {
	log := that.logger.With("method", "commit", "sessionID", session.ID)

	conn.session = &session

	if err := that.game.SaveSession(ctx, session); err != nil {
		log.Error("failed to save session", "error", err)
	}

	if schedule && session.IsComputerThinking() {
		that.scheduleComputer(ctx, conn)
	}

	if err := that.sendState(conn, session); err != nil {
		return fmt.Errorf("failed to send game state: %w", err)
	}

	return nil
}

// scheduleComputer arms the pacing timer for the computer's reply. Callers hold conn.mu.
func (that *Server) scheduleComputer(ctx context.Context, conn *connection) {
	conn.cancelPending()

	turn := conn.turn
	conn.timer = time.AfterFunc(that.moveDelay, func() {
		that.playComputer(ctx, conn, turn)
	})
}

func (that *Server) playComputer(ctx context.Context, conn *connection, turn uint64) {
	log := that.logger.With("method", "playComputer")

	conn.mu.Lock()
	defer conn.mu.Unlock()

	if conn.closed || conn.turn != turn || conn.session == nil || ctx.Err() != nil {
		return
	}

	conn.timer = nil

	session := that.game.PlayComputer(ctx, *conn.session)
	if err := that.commit(ctx, conn, session, false); err != nil {
		log.Error("failed to push computer move", "sessionID", session.ID, "error", err)
	}
}

func (that *Server) notConnected(conn *connection) error {
	that.sendError(conn, "send connect first")
	return nil
}
