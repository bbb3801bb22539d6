package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/pente-backend/internal/entity"
)

const writeWait = 10 * time.Second

// client - a single websocket connection. gorilla connections allow one
// concurrent writer, pushes from other connections go through send as well.
type client struct {
	conn *websocket.Conn

	writeMutex sync.Mutex
	// last game sent to the player on this connection, guarded by writeMutex
	game *entity.Game
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn}
}

func (that *client) send(action string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if payload.Game != nil && payload.Player != nil && payload.Game.HasPlayer(payload.Player.ID) {
		game := *payload.Game
		that.game = &game
	}

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// lastGame - a copy of the last game this connection reported, if any.
func (that *client) lastGame() (entity.Game, bool) {
	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if that.game == nil {
		return entity.Game{}, false
	}

	return *that.game, true
}

func (that *client) close() error {
	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	_ = that.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)

	return that.conn.Close()
}
