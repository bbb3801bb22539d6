package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/pente-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a stored Pente game. State is the encoded game state exchanged
// between the two players; everything else is bookkeeping around it.
type Game struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Status  string `json:"status"`
	Turn    string `json:"player_turn,omitempty"`
	Winner  string `json:"winner,omitempty"`
	Method  string `json:"method,omitempty"`
	BlackID string `json:"black_id"`
	WhiteID string `json:"white_id,omitempty"`
}

func NewGame(id, blackID string) *Game {
	return &Game{
		ID:      id,
		Status:  StatusWaiting,
		BlackID: blackID,
	}
}

// Join - seats the second player as White and starts the game.
func (that *Game) Join(playerID string) error {
	if that.HasPlayer(playerID) {
		return nil
	}

	if that.WhiteID != "" {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, that.ID)
	}

	that.WhiteID = playerID
	if that.IsWaiting() {
		that.Status = StatusOngoing
	}

	return nil
}

func (that *Game) HasPlayer(playerID string) bool {
	return playerID != "" && (that.BlackID == playerID || that.WhiteID == playerID)
}

// Opponent - returns the other player's id, empty if there is none yet.
func (that *Game) Opponent(playerID string) string {
	if playerID == "" {
		return ""
	}

	switch playerID {
	case that.BlackID:
		return that.WhiteID
	case that.WhiteID:
		return that.BlackID
	default:
		return ""
	}
}

// Players - ids of the seated players.
func (that *Game) Players() []string {
	players := make([]string, 0, 2)
	for _, id := range []string{that.BlackID, that.WhiteID} {
		if id != "" {
			players = append(players, id)
		}
	}
	return players
}

func (that *Game) Finish(winner, method string) {
	that.Status = StatusFinished
	that.Winner = winner
	that.Method = method
	that.Turn = ""
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
