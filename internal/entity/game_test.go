package entity

import (
	"testing"

	"github.com/rocketscienceinc/pente-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_Join(t *testing.T) {
	t.Run("Second player becomes White and the game starts", func(t *testing.T) {
		// Given: a waiting game created by Black
		game := NewGame("g1", "black")

		// When: another player joins
		err := game.Join("white")

		// Then: the game is ongoing with both seats taken
		require.NoError(t, err)
		expectedGame := &Game{
			ID:      "g1",
			Status:  StatusOngoing,
			BlackID: "black",
			WhiteID: "white",
		}
		assert.Equal(t, expectedGame, game)
		assert.Equal(t, []string{"black", "white"}, game.Players())
	})

	t.Run("Joining twice is idempotent", func(t *testing.T) {
		game := NewGame("g1", "black")
		require.NoError(t, game.Join("white"))

		assert.NoError(t, game.Join("white"))
		assert.NoError(t, game.Join("black"))
	})

	t.Run("Third player is rejected", func(t *testing.T) {
		// Given: a full game
		game := NewGame("g1", "black")
		require.NoError(t, game.Join("white"))

		// When: a third player joins
		err := game.Join("stranger")

		// Then: ErrGameIsFull is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameIsFull)
		assert.Equal(t, "white", game.WhiteID)
	})
}

func TestGame_Opponent(t *testing.T) {
	game := NewGame("g1", "black")

	assert.Empty(t, game.Opponent("black"))
	assert.Empty(t, game.Opponent(""))

	require.NoError(t, game.Join("white"))

	assert.Equal(t, "white", game.Opponent("black"))
	assert.Equal(t, "black", game.Opponent("white"))
	assert.Empty(t, game.Opponent("stranger"))
}

func TestGame_Finish(t *testing.T) {
	// Given: an ongoing game
	game := &Game{Status: StatusOngoing, Turn: "White"}

	// When: it finishes
	game.Finish("Black", "fiveInARow")

	// Then: the result is recorded and no one is to move
	assert.True(t, game.IsFinished())
	assert.Equal(t, "Black", game.Winner)
	assert.Equal(t, "fiveInARow", game.Method)
	assert.Empty(t, game.Turn)
}

func TestPlayer_Leave(t *testing.T) {
	player := &Player{ID: "p1", Color: "Black", GameID: "g1"}

	player.Leave()

	assert.Equal(t, &Player{ID: "p1"}, player)
}
