package pente

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid            [Size][Size]Cell `json:"grid"`
	History         []Move           `json:"history"`
	Pending         *Position        `json:"pending,omitempty"`
	PendingCaptures []Position       `json:"pendingCaptures,omitempty"`
	LastCaptures    []Position       `json:"lastCaptures,omitempty"`
	Current         string           `json:"current"`
	CapturedBlack   int              `json:"capturedBlack"`
	CapturedWhite   int              `json:"capturedWhite"`
	State           string           `json:"state"`
	Winner          string           `json:"winner,omitempty"`
	Method          string           `json:"method,omitempty"`
	CanMove         bool             `json:"canMove"`
	Waiting         bool             `json:"waitingForOpponent"`
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Grid:            that.board.Grid(),
		History:         that.History(),
		PendingCaptures: that.PendingCaptures(),
		LastCaptures:    that.LastCaptures(),
		Current:         that.current.String(),
		CapturedBlack:   that.capturedPairs[Black],
		CapturedWhite:   that.capturedPairs[White],
		State:           that.state.String(),
		CanMove:         that.canMove,
		Waiting:         that.WaitingForOpponent(),
	}

	if pos, ok := that.Pending(); ok {
		snapshot.Pending = &pos
	}

	if winner, method, ok := that.state.Winner(); ok {
		snapshot.Winner = winner.String()
		snapshot.Method = method.String()
	}

	return snapshot
}

// LastMove - the most recent committed move, ok is false for an empty history.
func (that *Snapshot) LastMove() (Move, bool) {
	if len(that.History) == 0 {
		return Move{}, false
	}
	return that.History[len(that.History)-1], true
}
