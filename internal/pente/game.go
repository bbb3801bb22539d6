package pente

import (
	"errors"
	"fmt"
)

// Center is the cell of the opening stone.
const Center = Size / 2

var (
	ErrGameOver        = errors.New("game is already finished")
	ErrFirstMoveUnsent = errors.New("opening move has not been sent yet")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidPosition = errors.New("invalid board position")
)

// Game is the move lifecycle and turn control for one Pente game.
// It is not safe for concurrent use.
type Game struct {
	board         Board
	current       Player
	history       []Move
	capturedPairs [2]int
	state         State

	pending         *Position
	pendingCaptures []Position
	lastCaptures    []Position

	firstMovePendingSend bool

	assignment Assignment
	blackID    string
	canMove    bool

	notifier  Notifier
	notifying bool
}

type Option func(*Game)

// WithNotifier - installs the hook that learns about commits, first-move sends and resets.
func WithNotifier(notifier Notifier) Option {
	return func(game *Game) {
		game.notifier = notifier
	}
}

func NewGame(opts ...Option) *Game {
	game := &Game{}
	game.resetState()

	for _, opt := range opts {
		opt(game)
	}

	return game
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) CurrentPlayer() Player {
	return that.current
}

// History - returns a copy of the committed moves in play order.
func (that *Game) History() []Move {
	return append([]Move(nil), that.history...)
}

// CapturedPairs - pairs captured by player so far.
func (that *Game) CapturedPairs(player Player) int {
	return that.capturedPairs[player]
}

func (that *Game) State() State {
	return that.state
}

// Pending - returns the tentative stone, ok is false when no move is pending.
func (that *Game) Pending() (Position, bool) {
	if that.pending == nil {
		return Position{}, false
	}
	return *that.pending, true
}

// PendingCaptures - stones that confirming the pending move would remove.
func (that *Game) PendingCaptures() []Position {
	return append([]Position(nil), that.pendingCaptures...)
}

// LastCaptures - stones removed by the most recent committed move.
func (that *Game) LastCaptures() []Position {
	return append([]Position(nil), that.lastCaptures...)
}

func (that *Game) IsFirstMoveReadyToSend() bool {
	return that.firstMovePendingSend
}

func (that *Game) CanMove() bool {
	return that.canMove
}

// WaitingForOpponent - an assignment exists and it is the other color's turn.
func (that *Game) WaitingForOpponent() bool {
	_, assigned := that.assignment.Color()
	return assigned && !that.canMove
}

func (that *Game) Assignment() Assignment {
	return that.assignment
}

// BlackID - identity of the actor playing Black, empty when unknown.
func (that *Game) BlackID() string {
	return that.blackID
}

// SetAssignment - sets the local actor's color and the Black actor identity.
func (that *Game) SetAssignment(assignment Assignment, blackID string) {
	if that.notifying {
		return
	}

	that.assignment = assignment
	that.blackID = blackID
	that.updatePermissions()
}

// AssignLocal - derives the local actor's color from the Black actor identity:
// unknown Black leaves the game unassigned, a match plays Black, anyone else White.
func (that *Game) AssignLocal(actorID string) {
	switch {
	case that.blackID == "":
		that.SetAssignment(Unassigned(), "")
	case that.blackID == actorID:
		that.SetAssignment(AssignedTo(Black), that.blackID)
	default:
		that.SetAssignment(AssignedTo(White), that.blackID)
	}
}

func (that *Game) updatePermissions() {
	that.canMove = that.assignment.permits(that.current)
}

// Validate - returns why a proposal at (row, col) would be rejected, nil if it
// would be accepted. A pending stone at (row, col) is reported as acceptable:
// proposing it again cancels it.
func (that *Game) Validate(row, col int) error {
	switch {
	case that.state.IsWon():
		return ErrGameOver
	case that.firstMovePendingSend:
		return ErrFirstMoveUnsent
	case !that.canMove:
		return ErrNotYourTurn
	case !IsValidPosition(row, col):
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, row, col)
	}

	if that.pending != nil && *that.pending == (Position{Row: row, Col: col}) {
		return nil
	}

	if !that.board.IsEmpty(row, col) {
		return ErrCellOccupied
	}

	return nil
}

// Propose - tentatively places the current player's stone at (row, col).
// Proposing the pending cell again cancels it, proposing another cell replaces it.
// Rejected proposals change nothing. Reports whether (row, col) is pending afterwards.
func (that *Game) Propose(row, col int) bool {
	if that.notifying || that.state.IsWon() || that.firstMovePendingSend || !that.canMove {
		return false
	}

	if that.pending != nil {
		same := *that.pending == Position{Row: row, Col: col}
		that.revertPending()
		if same {
			return false
		}
	}

	if !that.board.IsEmpty(row, col) {
		return false
	}

	that.board.Set(row, col, that.current)
	that.pending = &Position{Row: row, Col: col}
	that.pendingCaptures = FindCaptures(&that.board, row, col, that.current)

	return true
}

// Confirm - commits the pending move: records it, removes its captures, checks
// for a win and passes the turn. Reports whether a move was committed.
func (that *Game) Confirm() bool {
	if that.notifying || that.pending == nil {
		return false
	}

	move := Move{Row: that.pending.Row, Col: that.pending.Col, Player: that.current}
	captures := that.pendingCaptures

	if len(captures)%2 != 0 {
		panic(fmt.Sprintf("pente: odd capture count %d for move %v", len(captures), move))
	}

	that.history = append(that.history, move)

	for _, pos := range captures {
		that.board.Remove(pos.Row, pos.Col)
	}
	that.capturedPairs[move.Player] += len(captures) / 2

	switch {
	case CheckFiveInRow(&that.board, move.Row, move.Col, move.Player):
		that.state = Won(move.Player, FiveInRow)
	case CheckCaptureWin(that.capturedPairs[move.Player]):
		that.state = Won(move.Player, FiveCaptures)
	default:
		that.current = that.current.Opponent()
	}

	that.updatePermissions()

	that.pending = nil
	that.pendingCaptures = nil
	that.lastCaptures = captures

	that.notify(EventMoveCommitted)

	return true
}

// Undo - removes the pending stone, no-op without one.
func (that *Game) Undo() {
	if that.notifying || that.pending == nil {
		return
	}

	that.revertPending()
}

func (that *Game) revertPending() {
	that.board.Remove(that.pending.Row, that.pending.Col)
	that.pending = nil
	that.pendingCaptures = nil
}

// Reset - clears the board, history, counts, result and turn assignment.
func (that *Game) Reset() {
	if that.notifying {
		return
	}

	that.resetState()
	that.notify(EventReset)
}

func (that *Game) resetState() {
	that.board.Reset()
	that.current = Black
	that.history = nil
	that.capturedPairs = [2]int{}
	that.state = Playing()
	that.pending = nil
	that.pendingCaptures = nil
	that.lastCaptures = nil
	that.firstMovePendingSend = false
	that.assignment = Unassigned()
	that.blackID = ""
	that.updatePermissions()
}

// StartNewGame - resets and seeds Black's opening stone at the center. White is
// to move, but nothing can be proposed until SendFirstMove hands the opening over.
func (that *Game) StartNewGame(blackID string) {
	if that.notifying {
		return
	}

	that.resetState()
	that.blackID = blackID

	that.board.Set(Center, Center, Black)
	that.history = append(that.history, Move{Row: Center, Col: Center, Player: Black})
	that.current = White
	that.firstMovePendingSend = true
	that.updatePermissions()

	that.notify(EventReset)
}

// SendFirstMove - releases the opening move to the transmission hook, once.
func (that *Game) SendFirstMove() bool {
	if that.notifying || !that.firstMovePendingSend {
		return false
	}

	that.firstMovePendingSend = false
	that.notify(EventFirstMoveSent)

	return true
}

func (that *Game) notify(event Event) {
	if that.notifier == nil {
		return
	}

	that.notifying = true
	defer func() {
		that.notifying = false
	}()

	that.notifier(that, event)
}
