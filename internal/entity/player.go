package entity

type Player struct {
	ID     string `json:"id"`
	Color  string `json:"color,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

// Leave - detaches the player from its game.
func (that *Player) Leave() {
	that.Color = ""
	that.GameID = ""
}
