package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

const writeWait = 10 * time.Second

// connection owns one player's session. mu guards the session and the pending
// computer move; writeMu serializes frames because gorilla allows one writer.
type connection struct {
	ws *websocket.Conn

	mu      sync.Mutex
	session *entity.Session
	turn    uint64
	timer   *time.Timer
	closed  bool

	writeMu sync.Mutex
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{ws: ws}
}

func (that *connection) send(action string, payload ResponsePayload) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	rawPayload, err := marshalPayload(payload)
	if err != nil {
		return err
	}

	if err = that.ws.WriteJSON(Message{Action: action, Payload: rawPayload}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// cancelPending drops a scheduled computer move. Callers hold mu.
func (that *connection) cancelPending() {
	that.turn++

	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
}

func (that *connection) close() {
	that.mu.Lock()
	that.closed = true
	that.cancelPending()
	that.mu.Unlock()

	_ = that.ws.Close()
}
