package engine

// legDirections returns the cardinal direction of each leg of a relative
// move from its sign, independent of magnitude.
func legDirections(dx, dy int) (xDir, yDir Direction) {
	if dx >= 0 {
		xDir = East
	} else {
		xDir = West
	}
	if dy >= 0 {
		yDir = North
	} else {
		yDir = South
	}
	return
}

func rollLeg(d *Die, steps int, dir Direction) {
	for i := 0; i < steps; i++ {
		d.RollOneStep(dir)
	}
}

// applyRelativeMove walks d through r one unit step at a time, in the leg
// order r.FirstX specifies, updating both position and orientation.
func applyRelativeMove(d *Die, r RelativeMove) {
	xDir, yDir := legDirections(r.DX, r.DY)
	if r.FirstX {
		rollLeg(d, abs(r.DX), xDir)
		rollLeg(d, abs(r.DY), yDir)
	} else {
		rollLeg(d, abs(r.DY), yDir)
		rollLeg(d, abs(r.DX), xDir)
	}
}

// MakeMove applies m to the live position. When record is true the move and
// any captured die are pushed onto the undo stacks and the redo stacks are
// cleared; when false (the search's simulated trial moves, and
// UndoMove/RedoMove's internal replay) the stacks are left untouched. It
// returns the index of any die captured by landing on its square, or Empty.
//
// MakeMove does not check legality — callers must only pass moves produced
// or validated by LegalMoves/IsLegal.
func (g *Game) MakeMove(m Move, record bool) int {
	validateDieIndex(m.DieIndex)
	d := &g.dice[m.DieIndex]
	g.board.Clear(d.X, d.Y)

	applyRelativeMove(d, m.Rel)

	victim := Empty
	if occ := g.board.At(d.X, d.Y); occ != Empty {
		victim = occ
		g.dice[occ].Kill()
	}

	if record {
		g.redoMoveStack = g.redoMoveStack[:0]
		g.redoDeathStack = g.redoDeathStack[:0]
		g.moveStack = append(g.moveStack, m)
		g.deathStack = append(g.deathStack, victim)
	}

	g.board.Set(d.X, d.Y, m.DieIndex)
	g.Next = g.Next.Inverse()
	if record && g.Winner() != NoColor {
		g.Phase = Finished
	}
	return victim
}

// UndoMove reverses the most recently recorded move: it inverts and replays
// it, revives any die that move captured back onto the square it died on,
// and pushes the original move onto the redo stacks. It returns the zero
// move and false if the undo stack is empty.
func (g *Game) UndoMove() (Move, bool) {
	if len(g.moveStack) == 0 {
		return Move{}, false
	}
	last := len(g.moveStack) - 1
	m := g.moveStack[last]
	victim := g.deathStack[last]
	g.moveStack = g.moveStack[:last]
	g.deathStack = g.deathStack[:last]

	inv := m.Invert()
	g.MakeMove(inv, false)

	g.redoMoveStack = append(g.redoMoveStack, m)
	g.redoDeathStack = append(g.redoDeathStack, victim)

	if victim != Empty {
		g.dice[victim].Revive()
		g.board.Set(g.dice[victim].X, g.dice[victim].Y, victim)
	}
	g.Phase = Idle
	return inv, true
}

// RedoMove reapplies the most recently undone move. Because UndoMove already
// restored any captured die to the square the move lands on, MakeMove's own
// occupant check kills it again without any special-casing here. It returns
// the zero move and false if the redo stack is empty.
func (g *Game) RedoMove() (Move, bool) {
	if len(g.redoMoveStack) == 0 {
		return Move{}, false
	}
	last := len(g.redoMoveStack) - 1
	m := g.redoMoveStack[last]
	g.redoMoveStack = g.redoMoveStack[:last]
	g.redoDeathStack = g.redoDeathStack[:last]

	victim := g.MakeMove(m, false)

	g.moveStack = append(g.moveStack, m)
	g.deathStack = append(g.deathStack, victim)
	if g.Winner() != NoColor {
		g.Phase = Finished
	}
	return m, true
}
