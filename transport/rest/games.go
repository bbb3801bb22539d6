package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/pente-backend/internal/repository"
)

type GameHandler interface {
	SnapshotHandler(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger    *slog.Logger
	snapshots snapshotUseCase
}

func NewGameHandler(logger *slog.Logger, snapshots snapshotUseCase) GameHandler {
	return &gameHandler{
		logger:    logger,
		snapshots: snapshots,
	}
}

// SnapshotHandler - renders GET /games/{id}[?player=id] as the game snapshot
// seen by that player.
func (that *gameHandler) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SnapshotHandler")

	gameID := r.PathValue("id")

	snapshot, err := that.snapshots.GetSnapshot(r.Context(), gameID, r.URL.Query().Get("player"))
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get snapshot", "gameID", gameID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Error("failed to write snapshot", "error", err)
	}
}
