package pente

// Size is the board dimension. The board is always Size×Size.
const Size = 19

// Cell is the content of one intersection.
type Cell uint8

const (
	Empty Cell = iota
	BlackStone
	WhiteStone
)

func cellOf(player Player) Cell {
	if player == Black {
		return BlackStone
	}
	return WhiteStone
}

// Player - returns the owner of the stone, ok is false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case BlackStone:
		return Black, true
	case WhiteStone:
		return White, true
	default:
		return Black, false
	}
}

// Board is the 19×19 grid. Out-of-range access never panics: reads report
// empty and writes are ignored.
type Board struct {
	cells [Size][Size]Cell
}

func IsValidPosition(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsValidPosition - see the package level IsValidPosition.
func (that *Board) IsValidPosition(row, col int) bool {
	return IsValidPosition(row, col)
}

// Get - returns the stone at (row, col), ok is false for empty or invalid positions.
func (that *Board) Get(row, col int) (Player, bool) {
	if !IsValidPosition(row, col) {
		return Black, false
	}
	return that.cells[row][col].Player()
}

// At - returns the raw cell, Empty for invalid positions.
func (that *Board) At(row, col int) Cell {
	if !IsValidPosition(row, col) {
		return Empty
	}
	return that.cells[row][col]
}

// Set - overwrites the cell with the player's stone. Occupancy is not checked here.
func (that *Board) Set(row, col int, player Player) {
	if !IsValidPosition(row, col) {
		return
	}
	that.cells[row][col] = cellOf(player)
}

// Remove - empties the cell.
func (that *Board) Remove(row, col int) {
	if !IsValidPosition(row, col) {
		return
	}
	that.cells[row][col] = Empty
}

// IsEmpty - false for invalid positions: the position does not exist.
func (that *Board) IsEmpty(row, col int) bool {
	if !IsValidPosition(row, col) {
		return false
	}
	return that.cells[row][col] == Empty
}

func (that *Board) Reset() {
	that.cells = [Size][Size]Cell{}
}

// Grid - returns a copy of all cells indexed [row][col].
func (that *Board) Grid() [Size][Size]Cell {
	return that.cells
}

// holds reports whether the valid position (row, col) carries the player's stone.
func (that *Board) holds(row, col int, player Player) bool {
	owner, ok := that.Get(row, col)
	return ok && owner == player
}
