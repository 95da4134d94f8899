package engine

// BoardSize is the side length of the square grid.
const BoardSize = 9

// Empty marks a board cell with no die on it.
const Empty = -1

// Board is a 9x9 grid of die indices. It never holds a pointer or copy of a
// Die — only the index into Game.dice — so that the board, the dice array,
// and the undo stacks can all be copied or serialized independently without
// aliasing concerns.
type Board [BoardSize][BoardSize]int

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	var b Board
	for x := range b {
		for y := range b[x] {
			b[x][y] = Empty
		}
	}
	return b
}

// InBounds reports whether (x, y) is a valid board coordinate.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// At returns the die index occupying (x, y), or Empty.
func (b *Board) At(x, y int) int {
	return b[x][y]
}

// Set writes a die index into (x, y).
func (b *Board) Set(x, y, dieIndex int) {
	b[x][y] = dieIndex
}

// Clear empties (x, y).
func (b *Board) Clear(x, y int) {
	b[x][y] = Empty
}
