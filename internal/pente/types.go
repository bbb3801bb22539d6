package pente

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Player is one of the two stone colors.
type Player int

const (
	Black Player = iota
	White
)

const (
	blackName = "Black"
	whiteName = "White"

	blackTag = 'B'
	whiteTag = 'W'
)

// Opponent - returns the other color.
func (that Player) Opponent() Player {
	if that == Black {
		return White
	}
	return Black
}

func (that Player) String() string {
	if that == Black {
		return blackName
	}
	return whiteName
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, ok := ParsePlayer(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}

	*that = player

	return nil
}

func (that Player) tag() byte {
	if that == Black {
		return blackTag
	}
	return whiteTag
}

// ParsePlayer - parses the canonical player name ("Black" or "White").
func ParsePlayer(name string) (Player, bool) {
	switch name {
	case blackName:
		return Black, true
	case whiteName:
		return White, true
	default:
		return Black, false
	}
}

func playerFromTag(tag byte) (Player, bool) {
	switch tag {
	case blackTag:
		return Black, true
	case whiteTag:
		return White, true
	default:
		return Black, false
	}
}

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is a committed stone placement.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player Player `json:"player"`
}

type WinMethod int

const (
	FiveInRow WinMethod = iota
	FiveCaptures
)

const (
	methodFiveInRow    = "fiveInARow"
	methodFiveCaptures = "fiveCaptures"
)

func (that WinMethod) String() string {
	if that == FiveInRow {
		return methodFiveInRow
	}
	return methodFiveCaptures
}

func parseWinMethod(name string) (WinMethod, bool) {
	switch name {
	case methodFiveInRow:
		return FiveInRow, true
	case methodFiveCaptures:
		return FiveCaptures, true
	default:
		return FiveInRow, false
	}
}

// State is either playing or won; Winner and Method are meaningful only once won.
type State struct {
	won    bool
	winner Player
	method WinMethod
}

// Playing - returns the non-terminal state.
func Playing() State {
	return State{}
}

// Won - returns the terminal state for the given winner.
func Won(winner Player, method WinMethod) State {
	return State{won: true, winner: winner, method: method}
}

func (that State) IsWon() bool {
	return that.won
}

// Winner - returns the winner and its method, ok is false while playing.
func (that State) Winner() (Player, WinMethod, bool) {
	return that.winner, that.method, that.won
}

func (that State) String() string {
	if that.won {
		return stateWon
	}
	return statePlaying
}

// Assignment maps the local actor to a color; the zero value is unassigned.
type Assignment struct {
	assigned bool
	color    Player
}

// Unassigned - any actor may move on any turn (local hotseat).
func Unassigned() Assignment {
	return Assignment{}
}

// AssignedTo - the local actor plays the given color only.
func AssignedTo(color Player) Assignment {
	return Assignment{assigned: true, color: color}
}

// Color - returns the assigned color, ok is false when unassigned.
func (that Assignment) Color() (Player, bool) {
	return that.color, that.assigned
}

// permits reports whether the local actor may act while current is to move.
func (that Assignment) permits(current Player) bool {
	return !that.assigned || that.color == current
}

// Event is emitted to the Notifier once internal state has settled.
type Event int

const (
	EventMoveCommitted Event = iota
	EventFirstMoveSent
	EventReset
)

func (that Event) String() string {
	switch that {
	case EventMoveCommitted:
		return "move_committed"
	case EventFirstMoveSent:
		return "first_move_sent"
	default:
		return "reset"
	}
}

// Notifier receives events from a Game. Reads such as Encode and Snapshot are
// allowed inside it; mutating calls made from a Notifier are ignored.
type Notifier func(game *Game, event Event)
