package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/pente-backend/internal/entity"
	"github.com/rocketscienceinc/pente-backend/internal/pente"
)

const (
	// reported to both players of a game someone left
	gameStatusLeft = "left"
	// reported to the player whose opponent dropped their connection
	gameStatusOpponentOut = "opponent_out"
)

func (that *Server) handleConnect(ctx context.Context, sender *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		return that.sendErrorResponse(sender, msg.Action, "Player is required")
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(sender, msg.Action, "failed to create a new player")
	}

	that.register(player.ID, sender)

	payloadResp := Payload{Player: player}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Warn("failed to get current game", "gameID", player.GameID, "error", err)
		} else {
			payloadResp.Game = game
		}
	}

	if err = sender.send(msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player connected", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, sender *client, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, ok, err := that.requirePlayer(sender, msg)
	if !ok {
		return err
	}

	game, err := that.gameUseCase.CreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(sender, msg.Action, err.Error())
	}

	payloadResp := Payload{
		Player: seat(game, payloadReq.Player.ID),
		Game:   game,
	}

	if err = sender.send(msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game created", "gameID", game.ID)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, sender *client, msg *Message) error {
	log := that.logger.With("method", "handleJoinGame")

	payloadReq, ok, err := that.requirePlayer(sender, msg)
	if !ok {
		return err
	}

	if payloadReq.Game == nil {
		return that.sendErrorResponse(sender, msg.Action, "Game is required")
	}

	log = log.With("playerID", payloadReq.Player.ID, "gameID", payloadReq.Game.ID)

	game, err := that.gameUseCase.JoinGame(ctx, payloadReq.Game.ID, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to join game", "error", err)
		return that.sendErrorResponse(sender, msg.Action, fmt.Sprintf("game %s: %v", payloadReq.Game.ID, err))
	}

	that.broadcast(msg.Action, game)

	log.Info("player joined game")

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, sender *client, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, ok, err := that.requirePlayer(sender, msg)
	if !ok {
		return err
	}

	if payloadReq.Turn == nil {
		return that.sendErrorResponse(sender, msg.Action, "Turn is required")
	}

	playerID := payloadReq.Player.ID
	log = log.With("playerID", playerID)

	game, err := that.gameUseCase.MakeTurn(ctx, playerID, payloadReq.Turn.Row, payloadReq.Turn.Col)
	if err != nil {
		log.Info("turn rejected", "error", err)
		return that.sendErrorResponse(sender, msg.Action, err.Error())
	}

	if err = sender.send(msg.Action, Payload{Player: seat(game, playerID), Game: game, Turn: payloadReq.Turn}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	opponentID := game.Opponent(playerID)
	if conn, ok := that.connection(opponentID); ok {
		if err = conn.send(actionGameUpdate, Payload{Player: seat(game, opponentID), Game: game, Turn: payloadReq.Turn}); err != nil {
			log.Error("failed to send game update", "opponentID", opponentID, "error", err)
		}
	} else {
		log.Warn("opponent is not connected", "opponentID", opponentID)
	}

	if game.IsFinished() {
		log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}

	return nil
}

func (that *Server) handleGameState(ctx context.Context, sender *client, msg *Message) error {
	payloadReq, ok, err := that.requirePlayer(sender, msg)
	if !ok {
		return err
	}

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendErrorResponse(sender, msg.Action, err.Error())
	}

	return sender.send(msg.Action, Payload{Player: seat(game, payloadReq.Player.ID), Game: game})
}

func (that *Server) handleGameLeave(ctx context.Context, sender *client, msg *Message) error {
	log := that.logger.With("method", "handleGameLeave")

	payloadReq, ok, err := that.requirePlayer(sender, msg)
	if !ok {
		return err
	}

	game, err := that.gameUseCase.LeaveGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to leave game", "error", err)
		return that.sendErrorResponse(sender, msg.Action, err.Error())
	}

	game.Status = gameStatusLeft
	that.broadcast(msg.Action, game)

	log.Info("player left game", "gameID", game.ID)

	return nil
}

// requirePlayer - decodes the payload, answers with an error when it carries no player.
func (that *Server) requirePlayer(sender *client, msg *Message) (Payload, bool, error) {
	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return payloadReq, false, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		return payloadReq, false, that.sendErrorResponse(sender, msg.Action, "Player is required")
	}

	that.register(payloadReq.Player.ID, sender)

	return payloadReq, true, nil
}

// broadcast - sends the game to every seated player.
func (that *Server) broadcast(action string, game *entity.Game) {
	log := that.logger.With("method", "broadcast", "gameID", game.ID)

	for _, playerID := range game.Players() {
		conn, ok := that.connection(playerID)
		if !ok {
			log.Warn("connection not found for player", "playerID", playerID)
			continue
		}

		if err := conn.send(action, Payload{Player: seat(game, playerID), Game: game}); err != nil {
			log.Error("failed to send game update", "playerID", playerID, "error", err)
		}
	}
}

// seat - the player's view of their seat in game.
func seat(game *entity.Game, playerID string) *entity.Player {
	player := &entity.Player{ID: playerID}

	switch playerID {
	case game.BlackID:
		player.Color = pente.Black.String()
	case game.WhiteID:
		player.Color = pente.White.String()
	default:
		return player
	}

	if game.IsWaiting() || game.IsOngoing() {
		player.GameID = game.ID
	}

	return player
}

func (that *Server) sendErrorResponse(sender *client, action, errorMsg string) error {
	if err := sender.send(action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
