package pente

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play proposes and confirms each position in turn.
func play(t *testing.T, game *Game, moves ...Position) {
	t.Helper()

	for _, pos := range moves {
		require.True(t, game.Propose(pos.Row, pos.Col), "propose %v", pos)
		require.True(t, game.Confirm(), "confirm %v", pos)
	}
}

func TestNewGame(t *testing.T) {
	// When: creating a game
	game := NewGame()

	// Then: it is empty, Black to move, anyone may move
	assert.Equal(t, Black, game.CurrentPlayer())
	assert.Empty(t, game.History())
	assert.False(t, game.State().IsWon())
	assert.True(t, game.CanMove())
	assert.False(t, game.WaitingForOpponent())
	assert.Equal(t, [Size][Size]Cell{}, game.Snapshot().Grid)
	_, pending := game.Pending()
	assert.False(t, pending)
}

func TestGame_ProposeConfirm(t *testing.T) {
	t.Run("Confirmed move is recorded and the turn passes", func(t *testing.T) {
		// Given: an empty game
		game := NewGame()

		// When: Black proposes and confirms the center
		require.True(t, game.Propose(9, 9))
		require.True(t, game.Confirm())

		// Then: the stone is committed and White is to move
		board := game.Board()
		player, ok := board.Get(9, 9)
		require.True(t, ok)
		assert.Equal(t, Black, player)
		assert.Equal(t, White, game.CurrentPlayer())
		assert.Equal(t, []Move{{Row: 9, Col: 9, Player: Black}}, game.History())
	})

	t.Run("Proposal is on the board but not in history", func(t *testing.T) {
		// Given: an empty game
		game := NewGame()

		// When: Black proposes (3,3)
		require.True(t, game.Propose(3, 3))

		// Then: the stone is visible, pending, and not committed
		board := game.Board()
		assert.Equal(t, BlackStone, board.At(3, 3))
		pos, ok := game.Pending()
		require.True(t, ok)
		assert.Equal(t, Position{Row: 3, Col: 3}, pos)
		assert.Empty(t, game.History())
		assert.Equal(t, Black, game.CurrentPlayer())
	})

	t.Run("Proposing the pending cell again cancels it", func(t *testing.T) {
		// Given: a pending move
		game := NewGame()
		require.True(t, game.Propose(3, 3))

		// When: proposing the same cell
		accepted := game.Propose(3, 3)

		// Then: the stone is gone and nothing is pending
		assert.False(t, accepted)
		board := game.Board()
		assert.True(t, board.IsEmpty(3, 3))
		_, ok := game.Pending()
		assert.False(t, ok)
	})

	t.Run("Proposing another cell replaces the pending move", func(t *testing.T) {
		// Given: a pending move at (3,3)
		game := NewGame()
		require.True(t, game.Propose(3, 3))

		// When: proposing (4,4)
		require.True(t, game.Propose(4, 4))

		// Then: only (4,4) carries a stone
		board := game.Board()
		assert.True(t, board.IsEmpty(3, 3))
		assert.Equal(t, BlackStone, board.At(4, 4))
		pos, ok := game.Pending()
		require.True(t, ok)
		assert.Equal(t, Position{Row: 4, Col: 4}, pos)
	})

	t.Run("Occupied and invalid cells are rejected", func(t *testing.T) {
		// Given: a committed stone at (9,9)
		game := NewGame()
		play(t, game, Position{9, 9})
		before := game.Snapshot()

		// When: White proposes occupied or non-existent cells
		assert.False(t, game.Propose(9, 9))
		assert.False(t, game.Propose(-1, 0))
		assert.False(t, game.Propose(Size, Size))

		// Then: nothing changed
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Confirm and undo without a pending move are no-ops", func(t *testing.T) {
		game := NewGame()
		before := game.Snapshot()

		assert.False(t, game.Confirm())
		game.Undo()

		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Undo removes the pending stone", func(t *testing.T) {
		// Given: a pending move
		game := NewGame()
		require.True(t, game.Propose(3, 3))

		// When: undoing it
		game.Undo()

		// Then: the board is empty again
		assert.Equal(t, [Size][Size]Cell{}, game.Snapshot().Grid)
		_, ok := game.Pending()
		assert.False(t, ok)
		assert.Equal(t, Black, game.CurrentPlayer())
	})
}

func TestGame_Captures(t *testing.T) {
	t.Run("Pending captures are shown and applied on confirm", func(t *testing.T) {
		// Given: Black at (5,5), White at (5,6) and (5,7), Black to move
		game := NewGame()
		play(t, game, Position{5, 5}, Position{5, 6}, Position{0, 0}, Position{5, 7})

		// When: Black proposes (5,8)
		require.True(t, game.Propose(5, 8))

		// Then: the white pair is pending capture but still on the board
		assert.Equal(t, []Position{{5, 7}, {5, 6}}, game.PendingCaptures())
		board := game.Board()
		assert.Equal(t, WhiteStone, board.At(5, 6))
		assert.Equal(t, WhiteStone, board.At(5, 7))

		// When: Black confirms
		require.True(t, game.Confirm())

		// Then: the pair is removed and counted
		board = game.Board()
		assert.True(t, board.IsEmpty(5, 6))
		assert.True(t, board.IsEmpty(5, 7))
		assert.Equal(t, 1, game.CapturedPairs(Black))
		assert.Equal(t, 0, game.CapturedPairs(White))
		assert.Equal(t, []Position{{5, 7}, {5, 6}}, game.LastCaptures())
		assert.Empty(t, game.PendingCaptures())
		assert.Equal(t, White, game.CurrentPlayer())
	})

	t.Run("Undo keeps would-be captures on the board", func(t *testing.T) {
		// Given: a pending capturing move
		game := NewGame()
		play(t, game, Position{5, 5}, Position{5, 6}, Position{0, 0}, Position{5, 7})
		require.True(t, game.Propose(5, 8))

		// When: undoing
		game.Undo()

		// Then: the white pair survives
		board := game.Board()
		assert.Equal(t, WhiteStone, board.At(5, 6))
		assert.Equal(t, WhiteStone, board.At(5, 7))
		assert.Empty(t, game.PendingCaptures())
		assert.Equal(t, 0, game.CapturedPairs(Black))
	})

	t.Run("Odd capture list at confirm is a programmer error", func(t *testing.T) {
		// Given: a corrupted pending move
		game := NewGame()
		require.True(t, game.Propose(3, 3))
		game.pendingCaptures = []Position{{3, 4}}

		// Then: confirming panics
		assert.Panics(t, func() {
			game.Confirm()
		})
	})
}

func TestGame_Win(t *testing.T) {
	t.Run("Five in a row ends the game", func(t *testing.T) {
		// Given: Black four in a row on row 0, White scattered on row 10
		game := NewGame()
		play(t, game,
			Position{0, 0}, Position{10, 0},
			Position{0, 1}, Position{10, 2},
			Position{0, 2}, Position{10, 4},
			Position{0, 3}, Position{10, 6},
		)

		// When: Black completes five
		play(t, game, Position{0, 4})

		// Then: Black has won and keeps the turn
		winner, method, ok := game.State().Winner()
		require.True(t, ok)
		assert.Equal(t, Black, winner)
		assert.Equal(t, FiveInRow, method)
		assert.Equal(t, Black, game.CurrentPlayer())

		// And: no further moves are accepted
		assert.False(t, game.Propose(18, 18))
		assert.ErrorIs(t, game.Validate(18, 18), ErrGameOver)
	})

	t.Run("Fifth captured pair ends the game", func(t *testing.T) {
		// Given: Black has four pairs and can capture a fifth
		game := NewGame()
		game.Decode("moves=B5,5;W5,6;W5,7;&current=Black&capB=4&capW=0&state=playing")

		// When: Black captures
		play(t, game, Position{5, 8})

		// Then: Black wins by captures
		winner, method, ok := game.State().Winner()
		require.True(t, ok)
		assert.Equal(t, Black, winner)
		assert.Equal(t, FiveCaptures, method)
		assert.Equal(t, 5, game.CapturedPairs(Black))
	})

	t.Run("Reset allows play again", func(t *testing.T) {
		// Given: a won game
		game := NewGame()
		game.Decode("current=White&state=won&winner=White&method=fiveCaptures")
		require.True(t, game.State().IsWon())

		// When: resetting
		game.Reset()

		// Then: proposals are accepted again
		assert.False(t, game.State().IsWon())
		assert.True(t, game.Propose(9, 9))
	})
}

func TestGame_TurnAssignment(t *testing.T) {
	t.Run("Assigned actor may only move on its own turn", func(t *testing.T) {
		// Given: the local actor plays White while Black is to move
		game := NewGame()
		game.SetAssignment(AssignedTo(White), "black-actor")

		// Then: proposals are rejected and the actor waits
		assert.False(t, game.CanMove())
		assert.True(t, game.WaitingForOpponent())
		assert.False(t, game.Propose(3, 3))
		assert.ErrorIs(t, game.Validate(3, 3), ErrNotYourTurn)

		// When: the assignment changes to Black
		game.SetAssignment(AssignedTo(Black), "black-actor")

		// Then: the actor may move, and after confirming waits again
		assert.True(t, game.CanMove())
		play(t, game, Position{3, 3})
		assert.False(t, game.CanMove())
		assert.True(t, game.WaitingForOpponent())
	})

	t.Run("AssignLocal derives the color from the black identity", func(t *testing.T) {
		game := NewGame()

		game.AssignLocal("anyone")
		_, assigned := game.Assignment().Color()
		assert.False(t, assigned)

		game.SetAssignment(Unassigned(), "alice")
		game.AssignLocal("alice")
		color, assigned := game.Assignment().Color()
		require.True(t, assigned)
		assert.Equal(t, Black, color)

		game.AssignLocal("bob")
		color, assigned = game.Assignment().Color()
		require.True(t, assigned)
		assert.Equal(t, White, color)
		assert.Equal(t, "alice", game.BlackID())
	})

	t.Run("Reset clears the assignment", func(t *testing.T) {
		game := NewGame()
		game.SetAssignment(AssignedTo(White), "alice")

		game.Reset()

		_, assigned := game.Assignment().Color()
		assert.False(t, assigned)
		assert.Empty(t, game.BlackID())
		assert.True(t, game.CanMove())
	})
}

func TestGame_StartNewGame(t *testing.T) {
	t.Run("Seeds the opening stone and holds it until sent", func(t *testing.T) {
		// Given: a game with a recording notifier
		var events []Event
		game := NewGame(WithNotifier(func(_ *Game, event Event) {
			events = append(events, event)
		}))

		// When: starting a new game
		game.StartNewGame("alice")

		// Then: Black's center stone is committed and White is to move
		assert.Equal(t, []Move{{Row: Center, Col: Center, Player: Black}}, game.History())
		board := game.Board()
		assert.Equal(t, BlackStone, board.At(Center, Center))
		assert.Equal(t, White, game.CurrentPlayer())
		assert.Equal(t, "alice", game.BlackID())
		assert.True(t, game.IsFirstMoveReadyToSend())

		// And: nothing can be proposed yet
		assert.False(t, game.Propose(3, 3))
		assert.ErrorIs(t, game.Validate(3, 3), ErrFirstMoveUnsent)

		// When: sending the first move twice
		assert.True(t, game.SendFirstMove())
		assert.False(t, game.SendFirstMove())

		// Then: the hook heard about it exactly once and White may play
		assert.Equal(t, []Event{EventReset, EventFirstMoveSent}, events)
		assert.False(t, game.IsFirstMoveReadyToSend())
		assert.True(t, game.Propose(3, 3))
	})
}

func TestGame_Notifier(t *testing.T) {
	t.Run("Commit is announced after state settles", func(t *testing.T) {
		// Given: a notifier that encodes the game
		var encoded []string
		game := NewGame(WithNotifier(func(g *Game, event Event) {
			if event == EventMoveCommitted {
				encoded = append(encoded, g.Encode())
			}
		}))

		// When: Black plays (9,9)
		play(t, game, Position{9, 9})

		// Then: the encoding already contains the move and the new turn
		require.Len(t, encoded, 1)
		assert.Equal(t, "moves=B9,9;&current=White&capB=0&capW=0&state=playing", encoded[0])
	})

	t.Run("Mutations from inside the notifier are ignored", func(t *testing.T) {
		// Given: a notifier that tries to play on
		game := NewGame(WithNotifier(func(g *Game, event Event) {
			if event == EventMoveCommitted {
				g.Propose(0, 0)
				g.Confirm()
				g.Reset()
			}
		}))

		// When: Black plays (9,9)
		play(t, game, Position{9, 9})

		// Then: only Black's move happened
		assert.Len(t, game.History(), 1)
		board := game.Board()
		assert.True(t, board.IsEmpty(0, 0))
		assert.Equal(t, White, game.CurrentPlayer())
	})

	t.Run("Proposals and undo are silent", func(t *testing.T) {
		var events []Event
		game := NewGame(WithNotifier(func(_ *Game, event Event) {
			events = append(events, event)
		}))

		game.Propose(1, 1)
		game.Propose(2, 2)
		game.Undo()

		assert.Empty(t, events)
	})
}

func TestGame_Validate(t *testing.T) {
	// Given: a game with a stone at (9,9) and a pending move at (3,3)
	game := NewGame()
	play(t, game, Position{9, 9})
	require.True(t, game.Propose(3, 3))

	// Then: each case reports its reason
	assert.NoError(t, game.Validate(4, 4))
	assert.NoError(t, game.Validate(3, 3))
	assert.ErrorIs(t, game.Validate(9, 9), ErrCellOccupied)
	assert.ErrorIs(t, game.Validate(19, 0), ErrInvalidPosition)

	// And: validating never mutates
	pos, ok := game.Pending()
	require.True(t, ok)
	assert.Equal(t, Position{Row: 3, Col: 3}, pos)
}

func TestGame_Snapshot(t *testing.T) {
	// Given: a game with a pending capture
	game := NewGame()
	play(t, game, Position{5, 5}, Position{5, 6}, Position{0, 0}, Position{5, 7})
	require.True(t, game.Propose(5, 8))

	// When: taking a snapshot
	snapshot := game.Snapshot()

	// Then: it carries the render data
	assert.Equal(t, BlackStone, snapshot.Grid[5][8])
	require.NotNil(t, snapshot.Pending)
	assert.Equal(t, Position{Row: 5, Col: 8}, *snapshot.Pending)
	assert.Equal(t, []Position{{5, 7}, {5, 6}}, snapshot.PendingCaptures)
	assert.Equal(t, "Black", snapshot.Current)
	assert.Equal(t, "playing", snapshot.State)
	last, ok := snapshot.LastMove()
	require.True(t, ok)
	assert.Equal(t, Move{Row: 5, Col: 7, Player: White}, last)

	// And: it is a copy
	snapshot.History[0].Row = 18
	assert.Equal(t, 5, game.History()[0].Row)
}
