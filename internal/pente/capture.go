package pente

// captureDirections lists the 8 compass directions NW, N, NE, W, E, SW, S, SE.
var captureDirections = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FindCaptures - returns the opponent stones that a stone of player at (row, col)
// would capture. Each capturing direction contributes two positions, nearest first.
// The board is only read.
func FindCaptures(board *Board, row, col int, player Player) []Position {
	var captures []Position

	for _, dir := range captureDirections {
		captures = append(captures, captureInDirection(board, row, col, dir[0], dir[1], player)...)
	}

	return captures
}

// captureInDirection - matches the own-opponent-opponent-own flank pattern.
func captureInDirection(board *Board, row, col, dRow, dCol int, player Player) []Position {
	near := Position{Row: row + dRow, Col: col + dCol}
	far := Position{Row: row + 2*dRow, Col: col + 2*dCol}
	flank := Position{Row: row + 3*dRow, Col: col + 3*dCol}

	if !IsValidPosition(near.Row, near.Col) ||
		!IsValidPosition(far.Row, far.Col) ||
		!IsValidPosition(flank.Row, flank.Col) {
		return nil
	}

	opponent := player.Opponent()
	if board.holds(near.Row, near.Col, opponent) &&
		board.holds(far.Row, far.Col, opponent) &&
		board.holds(flank.Row, flank.Col, player) {
		return []Position{near, far}
	}

	return nil
}
