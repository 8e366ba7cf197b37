package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

const (
	actionConnect       = "connect"
	actionGameTurn      = "game:turn"
	actionGameReset     = "game:reset"
	actionGameDiff      = "game:difficulty"
	actionPlayerName    = "player:name"
	actionTrophiesReset = "trophies:reset"
	actionLeaderboard   = "leaderboard"
	actionGameLeave     = "game:leave"
	actionGameState     = "game:state"
	actionError         = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	SessionID  string  `json:"session_id,omitempty"`
	Player     *Player `json:"player,omitempty"`
	Cell       *int    `json:"cell,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
	Name       string  `json:"name,omitempty"`
	Limit      int     `json:"limit,omitempty"`
}

type Player struct {
	Name string `json:"name"`
}

type ResponsePayload struct {
	Game        *GameState          `json:"game,omitempty"`
	Leaderboard []entity.ScoreEntry `json:"leaderboard,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// GameState is what the client needs to draw the board and the status line.
type GameState struct {
	SessionID  string            `json:"session_id"`
	Board      entity.Board      `json:"board"`
	Phase      entity.Phase      `json:"phase"`
	Result     entity.Status     `json:"result"`
	Status     string            `json:"status"`
	Winner     entity.Mark       `json:"winner"`
	LastMove   int               `json:"last_move"`
	Difficulty entity.Difficulty `json:"difficulty"`
	PlayerName string            `json:"player_name,omitempty"`
	Trophies   int               `json:"trophies"`
}

func newGameState(session entity.Session) *GameState {
	return &GameState{
		SessionID:  session.ID,
		Board:      session.Board,
		Phase:      session.Phase,
		Result:     session.Status,
		Status:     session.StatusText(),
		Winner:     session.Winner,
		LastMove:   session.LastMove,
		Difficulty: session.Difficulty,
		PlayerName: session.PlayerName,
		Trophies:   session.Trophies,
	}
}

func marshalPayload(payload ResponsePayload) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return raw, nil
}
