package engine

// Orientation is an index into the 26-entry die-state table. 0-23 are the 24
// proper orientations of a six-faced die, 24 is the king orientation (every
// face treated as a 1, one step per turn), 25 is the killed sentinel.
type Orientation int8

const (
	KingOrientation Orientation = 24
	DeadOrientation Orientation = 25
	numOrientations             = 26
)

// transitionTable[i] holds, for orientation i: {topValue, north, south, east, west}.
// Index 0 is the initial state: 1 up, 6 down, 2 south, 5 north, 3 east, 4 west.
// The table encodes the physical rolling of a standard die and is stored as
// literal data; deriving it at runtime would just reimplement the die it
// describes.
var transitionTable = [numOrientations][5]int8{
	{1, 4, 16, 12, 8},
	{1, 9, 14, 5, 19},
	{1, 18, 6, 11, 15},
	{1, 13, 10, 17, 7},
	{2, 20, 0, 13, 9},
	{2, 11, 12, 22, 1},
	{2, 2, 21, 10, 14},
	{2, 15, 8, 3, 23},
	{3, 7, 19, 0, 21},
	{3, 23, 1, 4, 18},
	{3, 3, 22, 16, 6},
	{3, 17, 5, 20, 2},
	{4, 5, 17, 21, 0},
	{4, 22, 3, 18, 4},
	{4, 1, 23, 6, 16},
	{4, 19, 7, 2, 20},
	{5, 0, 20, 14, 10},
	{5, 12, 11, 23, 3},
	{5, 21, 2, 9, 13},
	{5, 8, 15, 1, 22},
	{6, 16, 4, 15, 11},
	{6, 6, 18, 8, 12},
	{6, 10, 13, 19, 5},
	{6, 14, 9, 7, 17},
	{1, 24, 24, 24, 24}, // king: fixed under every direction
	{0, 25, 25, 25, 25}, // dead: fixed under every direction
}

// directionColumn maps a Direction to its column in transitionTable (column 0 is value).
func directionColumn(d Direction) int {
	switch d {
	case North:
		return 1
	case South:
		return 2
	case East:
		return 3
	default: // West
		return 4
	}
}

// topValue returns the face value shown by an orientation (0 if dead).
func topValue(o Orientation) int {
	return int(transitionTable[o][0])
}

// rollOrientation returns the orientation reached by rolling one step in d.
func rollOrientation(o Orientation, d Direction) Orientation {
	return Orientation(transitionTable[o][directionColumn(d)])
}
