package usecase

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/pente-backend/internal/apperror"
	"github.com/rocketscienceinc/pente-backend/internal/entity"
	"github.com/rocketscienceinc/pente-backend/internal/pente"
)

var ErrTurnNotCommitted = errors.New("turn was not committed")

// turnRelay - the transmission hook of a single request: it copies every
// committed state of the pente game into the stored record.
type turnRelay struct {
	record    *entity.Game
	committed bool
}

func newTurnRelay(record *entity.Game) *turnRelay {
	return &turnRelay{record: record}
}

func (that *turnRelay) notify(game *pente.Game, event pente.Event) {
	if event != pente.EventMoveCommitted && event != pente.EventFirstMoveSent {
		return
	}

	that.committed = true
	that.record.State = game.Encode()

	if winner, method, won := game.State().Winner(); won {
		that.record.Finish(winner.String(), method.String())
		return
	}

	that.record.Turn = game.CurrentPlayer().String()
}

// load - a pente game restored from the record, seen by actorID.
func (that *turnRelay) load(actorID string) *pente.Game {
	game := pente.NewGame(pente.WithNotifier(that.notify))
	game.Decode(that.record.State)
	game.AssignLocal(actorID)

	return game
}

// turnError - maps a rejected proposal to the error reported to the player.
func turnError(err error) error {
	switch {
	case errors.Is(err, pente.ErrGameOver):
		return apperror.ErrGameFinished
	case errors.Is(err, pente.ErrFirstMoveUnsent):
		return apperror.ErrOpeningNotSent
	case errors.Is(err, pente.ErrNotYourTurn):
		return apperror.ErrNotYourTurn
	case errors.Is(err, pente.ErrCellOccupied):
		return apperror.ErrCellOccupied
	case errors.Is(err, pente.ErrInvalidPosition):
		return fmt.Errorf("%w: %w", apperror.ErrInvalidCell, err)
	default:
		return err
	}
}
