package engine

// sign returns -1, 0, or 1.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// pathCells returns every cell the die passes through on its way from (x, y)
// along the L-shaped path described by (dx, dy, firstX), in travel order,
// excluding the starting square and including the target square. When one of
// dx, dy is zero the path is a straight line; otherwise there is exactly one
// corner, positioned according to firstX.
func pathCells(x, y, dx, dy int, firstX bool) [][2]int {
	cells := make([][2]int, 0, abs(dx)+abs(dy))
	cx, cy := x, y
	walk := func(steps, sx, sy int) {
		for i := 0; i < steps; i++ {
			cx += sx
			cy += sy
			cells = append(cells, [2]int{cx, cy})
		}
	}
	sx, sy := sign(dx), sign(dy)
	if firstX {
		walk(abs(dx), sx, 0)
		walk(abs(dy), 0, sy)
	} else {
		walk(abs(dy), 0, sy)
		walk(abs(dx), sx, 0)
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LegalMoves returns every legal move for the die at dieIndex in the current
// position: it must belong to the player to move, land on the board, have an
// unobstructed path to its target, and find the target either empty or held
// by the opposing color.
func (g *Game) LegalMoves(dieIndex int) []Move {
	validateDieIndex(dieIndex)
	d := &g.dice[dieIndex]
	if d.Color != g.Next || d.GotKilled() {
		return nil
	}
	rels := PossibleMovesForValue(d.Value())
	moves := make([]Move, 0, len(rels))
	for _, r := range rels {
		tx, ty := d.X+r.DX, d.Y+r.DY
		if !InBounds(tx, ty) {
			continue
		}
		path := pathCells(d.X, d.Y, r.DX, r.DY, r.FirstX)
		blocked := false
		for _, c := range path[:len(path)-1] {
			if g.board.At(c[0], c[1]) != Empty {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		if occ := g.board.At(tx, ty); occ != Empty && g.dice[occ].Color == d.Color {
			continue
		}
		moves = append(moves, Move{DieIndex: dieIndex, Rel: r})
	}
	return moves
}

// LegalMovesForColor returns the union of legal moves for every live die of c.
func (g *Game) LegalMovesForColor(c Color) []Move {
	lo, hi := ColorRange(c)
	var all []Move
	for i := lo; i < hi; i++ {
		all = append(all, g.LegalMoves(i)...)
	}
	return all
}

// IsLegal reports whether m is among the legal moves for its die right now.
func (g *Game) IsLegal(m Move) bool {
	for _, cand := range g.LegalMoves(m.DieIndex) {
		if cand.Rel == m.Rel {
			return true
		}
	}
	return false
}
