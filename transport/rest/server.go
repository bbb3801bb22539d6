package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/pente-backend/internal/pente"
)

const shutdownTimeout = 5 * time.Second

type snapshotUseCase interface {
	GetSnapshot(ctx context.Context, gameID, viewerID string) (pente.Snapshot, error)
}

type Server struct {
	logger *slog.Logger

	ping  PingHandler
	games GameHandler
}

func New(logger *slog.Logger, snapshots snapshotUseCase) *Server {
	logger = logger.With("component", "rest")

	return &Server{
		logger: logger,
		ping:   NewPingHandler(),
		games:  NewGameHandler(logger, snapshots),
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.ping.PingHandler)
	mux.HandleFunc("GET /games/{id}", that.games.SnapshotHandler)

	return mux
}

// Start - starts HTTP server, it stops when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
