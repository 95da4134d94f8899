package engine

// RelativeMove is a die displacement: dx, dy steps and the traversal order
// used when both are nonzero. Manhattan length |dx|+|dy| equals the moving
// die's top value.
type RelativeMove struct {
	DX     int
	DY     int
	FirstX bool // true: traverse the x-leg before the y-leg
}

// Invert returns the relative move that undoes r.
func (r RelativeMove) Invert() RelativeMove {
	return RelativeMove{DX: -r.DX, DY: -r.DY, FirstX: !r.FirstX}
}

// Move pairs a die index with the relative move it is to perform.
type Move struct {
	DieIndex int
	Rel      RelativeMove
}

// Invert returns the move that undoes m.
func (m Move) Invert() Move {
	return Move{DieIndex: m.DieIndex, Rel: m.Rel.Invert()}
}

// possibleMovesByValue[v] holds every theoretically possible relative move
// for a die currently showing v (1..6), independent of board geometry.
// Counts per value: 0, 4, 12, 20, 28, 36, 44. Computed once at package init.
var possibleMovesByValue [7][]RelativeMove

func init() {
	for v := 1; v <= 6; v++ {
		moves := make([]RelativeMove, 0, 4+8*(v-1))
		moves = append(moves,
			RelativeMove{DX: v, DY: 0, FirstX: true},
			RelativeMove{DX: -v, DY: 0, FirstX: true},
			RelativeMove{DX: 0, DY: v, FirstX: false},
			RelativeMove{DX: 0, DY: -v, FirstX: false},
		)
		for i := 1; i < v; i++ {
			rest := v - i
			moves = append(moves,
				RelativeMove{DX: i, DY: rest, FirstX: true},
				RelativeMove{DX: -i, DY: rest, FirstX: true},
				RelativeMove{DX: i, DY: rest, FirstX: false},
				RelativeMove{DX: -i, DY: rest, FirstX: false},
				RelativeMove{DX: i, DY: -rest, FirstX: true},
				RelativeMove{DX: -i, DY: -rest, FirstX: true},
				RelativeMove{DX: i, DY: -rest, FirstX: false},
				RelativeMove{DX: -i, DY: -rest, FirstX: false},
			)
		}
		possibleMovesByValue[v] = moves
	}
}

// PossibleMovesForValue returns the pregenerated relative-move set for a die
// currently showing top value v. The returned slice must not be mutated.
func PossibleMovesForValue(v int) []RelativeMove {
	if v < 0 || v > 6 {
		return nil
	}
	return possibleMovesByValue[v]
}
