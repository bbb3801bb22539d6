package pente

const (
	winLength      = 5
	winCapturePair = 5
)

// lineAxes are the horizontal, vertical and both diagonal axes.
var lineAxes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckFiveInRow - reports whether a stone of player at (row, col) completes a
// contiguous line of five or more. The cell itself always counts as player's,
// so it can be asked before or after placing. Overlines win too.
func CheckFiveInRow(board *Board, row, col int, player Player) bool {
	if !IsValidPosition(row, col) {
		return false
	}

	for _, axis := range lineAxes {
		count := 1 + runLength(board, row, col, axis[0], axis[1], player) +
			runLength(board, row, col, -axis[0], -axis[1], player)

		if count >= winLength {
			return true
		}
	}

	return false
}

// runLength - counts player's stones from (row, col) exclusive along (dRow, dCol).
func runLength(board *Board, row, col, dRow, dCol int, player Player) int {
	count := 0

	r, c := row+dRow, col+dCol
	for board.holds(r, c, player) {
		count++
		r += dRow
		c += dCol
	}

	return count
}

// CheckCaptureWin - capturedPairs is the number of pairs (not stones) taken by one player.
func CheckCaptureWin(capturedPairs int) bool {
	return capturedPairs >= winCapturePair
}
