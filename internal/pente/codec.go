package pente

import (
	"net/url"
	"strconv"
	"strings"
)

// Wire keys of the encoded state.
const (
	KeyMoves   = "moves"
	KeyCurrent = "current"
	KeyCapB    = "capB"
	KeyCapW    = "capW"
	KeyState   = "state"
	KeyWinner  = "winner"
	KeyMethod  = "method"
	KeyBlackID = "blackID"
)

const (
	statePlaying = "playing"
	stateWon     = "won"

	fieldSeparator = "&"
	valueSeparator = "="
	moveSeparator  = ";"
	coordSeparator = ","
)

// Encode - serializes the committed state as a query string:
//
//	moves=B9,9;W9,10;&current=Black&capB=0&capW=0&state=playing&blackID=...
//
// A pending move is not part of the encoding.
func (that *Game) Encode() string {
	fields := make([]string, 0, 8)

	if moves := encodeMoves(that.history); moves != "" {
		fields = append(fields, KeyMoves+valueSeparator+moves)
	}

	fields = append(fields,
		KeyCurrent+valueSeparator+that.current.String(),
		KeyCapB+valueSeparator+strconv.Itoa(that.capturedPairs[Black]),
		KeyCapW+valueSeparator+strconv.Itoa(that.capturedPairs[White]),
		KeyState+valueSeparator+that.state.String(),
	)

	if winner, method, ok := that.state.Winner(); ok {
		fields = append(fields,
			KeyWinner+valueSeparator+winner.String(),
			KeyMethod+valueSeparator+method.String(),
		)
	}

	if that.blackID != "" {
		fields = append(fields, KeyBlackID+valueSeparator+escapeValue(that.blackID))
	}

	return strings.Join(fields, fieldSeparator)
}

func encodeMoves(history []Move) string {
	var sb strings.Builder

	for _, move := range history {
		sb.WriteByte(move.Player.tag())
		sb.WriteString(strconv.Itoa(move.Row))
		sb.WriteString(coordSeparator)
		sb.WriteString(strconv.Itoa(move.Col))
		sb.WriteString(moveSeparator)
	}

	return sb.String()
}

// Decode - replaces the whole state with the one carried by text. text may be a
// bare query, "?query" or a URL with a query. Moves are replayed in order on an
// empty board, re-deriving their captures. Malformed move tokens are skipped and
// malformed scalar fields keep their reset defaults; decoding never fails.
// The turn assignment is cleared, callers re-derive it with AssignLocal.
func (that *Game) Decode(text string) {
	if that.notifying {
		return
	}

	that.resetState()

	fields := parseQuery(text)

	if moves, ok := fields[KeyMoves]; ok {
		that.replayMoves(moves)
	}

	if current, ok := ParsePlayer(fields[KeyCurrent]); ok {
		that.current = current
	}

	if capB, ok := parseCount(fields[KeyCapB]); ok {
		that.capturedPairs[Black] = capB
	}

	if capW, ok := parseCount(fields[KeyCapW]); ok {
		that.capturedPairs[White] = capW
	}

	if fields[KeyState] == stateWon {
		winner, winnerOK := ParsePlayer(fields[KeyWinner])
		method, methodOK := parseWinMethod(fields[KeyMethod])
		if winnerOK && methodOK {
			that.state = Won(winner, method)
		}
	}

	if blackID, ok := fields[KeyBlackID]; ok {
		that.blackID = blackID
	}

	that.updatePermissions()
}

// replayMoves - places every well-formed token and removes the captures it makes.
func (that *Game) replayMoves(moves string) {
	for _, token := range strings.Split(moves, moveSeparator) {
		move, ok := parseMove(token)
		if !ok {
			continue
		}

		that.board.Set(move.Row, move.Col, move.Player)

		captures := FindCaptures(&that.board, move.Row, move.Col, move.Player)
		for _, pos := range captures {
			that.board.Remove(pos.Row, pos.Col)
		}

		that.history = append(that.history, move)
		that.lastCaptures = captures
	}
}

// parseMove - parses "<B|W><row>,<col>" with both coordinates on the board.
func parseMove(token string) (Move, bool) {
	if len(token) < 4 {
		return Move{}, false
	}

	player, ok := playerFromTag(token[0])
	if !ok {
		return Move{}, false
	}

	rowText, colText, found := strings.Cut(token[1:], coordSeparator)
	if !found {
		return Move{}, false
	}

	row, err := strconv.Atoi(rowText)
	if err != nil {
		return Move{}, false
	}

	col, err := strconv.Atoi(colText)
	if err != nil {
		return Move{}, false
	}

	if !IsValidPosition(row, col) {
		return Move{}, false
	}

	return Move{Row: row, Col: col, Player: player}, true
}

func parseCount(text string) (int, bool) {
	count, err := strconv.Atoi(text)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

// parseQuery - splits the query part of text into unescaped values, first
// occurrence wins. Values are percent-decoded and '+' stays a plus.
// url.ParseQuery is not used: it drops pairs containing ';', which every
// moves value does.
func parseQuery(text string) map[string]string {
	fields := make(map[string]string)

	if _, query, found := strings.Cut(text, "?"); found {
		text = query
	}
	text, _, _ = strings.Cut(text, "#")

	for _, pair := range strings.Split(text, fieldSeparator) {
		key, value, found := strings.Cut(pair, valueSeparator)
		if !found || key == "" {
			continue
		}

		unescaped, err := url.PathUnescape(value)
		if err != nil {
			continue
		}

		if _, seen := fields[key]; !seen {
			fields[key] = unescaped
		}
	}

	return fields
}

// escapeValue percent-encodes a value the way parseQuery decodes it: a space
// becomes %20, '+' is kept and the field separator is escaped.
func escapeValue(value string) string {
	return strings.ReplaceAll(url.PathEscape(value), fieldSeparator, "%26")
}
