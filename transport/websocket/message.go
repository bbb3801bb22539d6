package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/pente-backend/internal/entity"
)

const (
	actionConnect   = "connect"
	actionGameNew   = "game:new"
	actionGameJoin  = "game:join"
	actionGameTurn  = "game:turn"
	actionGameState = "game:state"
	actionGameLeave = "game:leave"

	// pushed to the opponent after a committed turn
	actionGameUpdate = "game:update"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Turn   *Turn          `json:"turn,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Turn - the cell a player puts a stone on.
type Turn struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
