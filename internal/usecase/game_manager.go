package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/pente-backend/internal/apperror"
	"github.com/rocketscienceinc/pente-backend/internal/entity"
	"github.com/rocketscienceinc/pente-backend/internal/pente"
	"github.com/rocketscienceinc/pente-backend/internal/repository"
)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

// GameManager - relays Pente turns between two players through the stored
// game state.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepoDep
	gameRepo   gameRepoDep
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
	}
}

// GetOrCreatePlayer - returns the player with id, or a new one for an empty id.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.getPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return player, nil
}

// CreateGame - starts a new game with playerID as Black and sends the opening stone.
func (that *GameManager) CreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame", "playerID", playerID)

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	existingGame, err := that.unfinishedGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if existingGame != nil {
		return existingGame, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, existingGame.ID)
	}

	record := entity.NewGame(uuid.NewString(), player.ID)
	relay := newTurnRelay(record)

	game := pente.NewGame(pente.WithNotifier(relay.notify))
	game.StartNewGame(player.ID)
	game.AssignLocal(player.ID)

	if !game.SendFirstMove() || !relay.committed {
		return nil, fmt.Errorf("failed to send the opening move: %w", ErrTurnNotCommitted)
	}

	if err = that.updateGame(ctx, record); err != nil {
		return nil, err
	}

	player.GameID = record.ID
	player.Color = pente.Black.String()
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	log.Info("game created", "gameID", record.ID)

	return record, nil
}

// JoinGame - seats playerID as White in a waiting game.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "JoinGame", "gameID", gameID, "playerID", playerID)

	record, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if record.HasPlayer(player.ID) && player.GameID == record.ID {
		return record, nil
	}

	if record.IsFinished() {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameFinished, record.ID)
	}

	if player.GameID != record.ID {
		existingGame, err := that.unfinishedGame(ctx, player)
		if err != nil {
			return nil, err
		}

		if existingGame != nil {
			return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, existingGame.ID)
		}
	}

	if err = record.Join(player.ID); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, record); err != nil {
		return nil, err
	}

	player.GameID = record.ID
	player.Color = pente.White.String()
	if record.BlackID == player.ID {
		player.Color = pente.Black.String()
	}

	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	log.Info("player joined game")

	return record, nil
}

// MakeTurn - places playerID's stone at (row, col) in their current game and
// stores the resulting state. The turn is validated against the stored state
// inside the update, so of two racing turns only one commits. A won game
// releases both players.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "playerID", playerID)

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrNotInGame
	}

	record, err := that.gameRepo.Update(ctx, player.GameID, func(record *entity.Game) error {
		if !record.HasPlayer(player.ID) {
			return fmt.Errorf("%w: game id %s", apperror.ErrNotInGame, record.ID)
		}

		if err := record.ConfirmOngoingState(); err != nil {
			return err
		}

		relay := newTurnRelay(record)
		game := relay.load(player.ID)

		if err := game.Validate(row, col); err != nil {
			return turnError(err)
		}

		if !game.Propose(row, col) || !game.Confirm() || !relay.committed {
			return fmt.Errorf("turn at (%d, %d): %w", row, col, ErrTurnNotCommitted)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("turn committed", "gameID", record.ID, "row", row, "col", col)

	if record.IsFinished() {
		that.releasePlayers(ctx, record)
		log.Info("game finished", "gameID", record.ID, "winner", record.Winner, "method", record.Method)
	}

	return record, nil
}

// LeaveGame - ends playerID's current game for both players and removes it.
func (that *GameManager) LeaveGame(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "LeaveGame", "playerID", playerID)

	record, err := that.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	that.releasePlayers(ctx, record)

	if err = that.gameRepo.DeleteByID(ctx, record.ID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("player left game", "gameID", record.ID)

	return record, nil
}

// GetGameByPlayerID - the game playerID is seated in.
func (that *GameManager) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrNotInGame
	}

	return that.getGameByID(ctx, player.GameID)
}

// GetSnapshot - the render snapshot of a stored game as seen by viewerID.
// An empty viewerID sees the game without a color.
func (that *GameManager) GetSnapshot(ctx context.Context, gameID, viewerID string) (pente.Snapshot, error) {
	record, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return pente.Snapshot{}, err
	}

	game := pente.NewGame()
	game.Decode(record.State)
	if viewerID != "" {
		game.AssignLocal(viewerID)
	}

	return game.Snapshot(), nil
}

// unfinishedGame - the waiting or ongoing game the player is seated in, nil
// when the player is free or their game expired or finished.
func (that *GameManager) unfinishedGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.GameID == "" {
		return nil, nil
	}

	existingGame, err := that.gameRepo.GetByID(ctx, player.GameID)
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		that.logger.Info("previous game expired", "playerID", player.ID, "gameID", player.GameID)
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to get current game: %w", err)
	case existingGame.IsFinished():
		return nil, nil
	}

	return existingGame, nil
}

func (that *GameManager) releasePlayers(ctx context.Context, record *entity.Game) {
	log := that.logger.With("method", "releasePlayers", "gameID", record.ID)

	for _, id := range record.Players() {
		player, err := that.playerRepo.GetByID(ctx, id)
		if err != nil {
			log.Error("failed to get player", "playerID", id, "error", err)
			continue
		}

		if player.GameID != record.ID {
			continue
		}

		player.Leave()
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "playerID", id, "error", err)
		}
	}
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: uuid.NewString(),
	}

	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
