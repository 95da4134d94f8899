package engine

import "testing"

// TestMoveInverseRestoresState checks the non-capturing case: MakeMove(m)
// followed by MakeMove(invert(m)), both unrecorded, must leave the grid,
// every die, and the side to move bitwise equal to how they started.
func TestMoveInverseRestoresState(t *testing.T) {
	g := NewGame()
	before := *g

	moves := g.LegalMoves(0)
	if len(moves) == 0 {
		t.Fatal("die 0 has no legal moves from the starting position")
	}
	m := moves[0]

	if victim := g.MakeMove(m, false); victim != Empty {
		t.Fatalf("unexpected capture on an empty board: victim %d", victim)
	}
	g.MakeMove(m.Invert(), false)

	if g.board != before.board {
		t.Error("board not restored after move + inverse")
	}
	if g.dice != before.dice {
		t.Error("dice not restored after move + inverse")
	}
	if g.Next != before.Next {
		t.Error("side to move not restored after move + inverse")
	}
}

// TestMakeMoveWalksTable folds the move's cardinal steps over the transition
// table by hand and checks MakeMove leaves the die in exactly that
// orientation.
func TestMakeMoveWalksTable(t *testing.T) {
	g := NewGame()
	for _, m := range g.LegalMoves(0) {
		start := g.Die(0).Current

		want := start
		xDir, yDir := East, North
		if m.Rel.DX < 0 {
			xDir = West
		}
		if m.Rel.DY < 0 {
			yDir = South
		}
		legs := [][2]int{{abs(m.Rel.DX), int(xDir)}, {abs(m.Rel.DY), int(yDir)}}
		if !m.Rel.FirstX {
			legs[0], legs[1] = legs[1], legs[0]
		}
		for _, leg := range legs {
			for i := 0; i < leg[0]; i++ {
				want = rollOrientation(want, Direction(leg[1]))
			}
		}

		g.MakeMove(m, false)
		if got := g.Die(0).Current; got != want {
			t.Errorf("move %+v: orientation %d, want %d from the table walk", m, got, want)
		}
		g.MakeMove(m.Invert(), false)
		if g.Die(0).Current != start {
			t.Fatalf("move %+v: inverse did not restore orientation", m)
		}
	}
}

// TestUndoRestoresInitialPosition checks that undoing the opening move
// restores the starting position exactly and leaves one entry on the redo
// stack.
func TestUndoRestoresInitialPosition(t *testing.T) {
	g := NewGame()
	before := *g

	m := g.LegalMoves(0)[0]
	g.MakeMove(m, true)
	if g.board == before.board {
		t.Fatal("move did not change the board")
	}

	undone, ok := g.UndoMove()
	if !ok {
		t.Fatal("UndoMove reported nothing to undo")
	}
	if undone != m.Invert() {
		t.Errorf("UndoMove returned %+v, want %+v", undone, m.Invert())
	}
	if g.board != before.board {
		t.Error("board not restored by UndoMove")
	}
	if g.dice != before.dice {
		t.Error("dice not restored by UndoMove")
	}
	if g.Next != before.Next {
		t.Error("side to move not restored by UndoMove")
	}
	if len(g.moveStack) != 0 || len(g.deathStack) != 0 {
		t.Error("undo stacks not emptied by UndoMove")
	}
	if len(g.redoMoveStack) != 1 {
		t.Errorf("redo stack has %d entries, want 1", len(g.redoMoveStack))
	}
}

func TestRedoReappliesMove(t *testing.T) {
	g := NewGame()
	m := g.LegalMoves(0)[0]
	g.MakeMove(m, true)
	afterMove := *g

	if _, ok := g.UndoMove(); !ok {
		t.Fatal("UndoMove reported nothing to undo")
	}
	redone, ok := g.RedoMove()
	if !ok {
		t.Fatal("RedoMove reported nothing to redo")
	}
	if redone != m {
		t.Errorf("RedoMove returned %+v, want %+v", redone, m)
	}
	if g.board != afterMove.board || g.dice != afterMove.dice || g.Next != afterMove.Next {
		t.Error("RedoMove did not reproduce the post-move state")
	}
	if len(g.redoMoveStack) != 0 {
		t.Error("redo stack not drained by RedoMove")
	}
}

// TestCaptureThenUndoRevives checks that a move which captures a die, once
// undone, brings the victim back to life on the square it died on.
func TestCaptureThenUndoRevives(t *testing.T) {
	g := NewGame()
	g.board = NewBoard()
	g.dice[0] = Die{X: 3, Y: 3, Color: White, Current: 0}
	g.dice[9] = Die{X: 3, Y: 5, Color: Black, Current: 0}
	g.board.Set(3, 3, 0)
	g.board.Set(3, 5, 9)
	g.Next = White
	before := *g

	m := Move{DieIndex: 0, Rel: RelativeMove{DX: 0, DY: 2, FirstX: false}}
	victim := g.MakeMove(m, true)
	if victim != 9 {
		t.Fatalf("MakeMove captured die %d, want 9", victim)
	}
	if !g.dice[9].GotKilled() {
		t.Fatal("captured die not marked dead")
	}
	if lastVictim, captured := g.LastVictim(); !captured || lastVictim != 9 {
		t.Errorf("LastVictim() = (%d, %v), want (9, true)", lastVictim, captured)
	}
	if lastMove, ok := g.LastMove(); !ok || lastMove != m {
		t.Errorf("LastMove() = (%+v, %v), want (%+v, true)", lastMove, ok, m)
	}

	if _, ok := g.UndoMove(); !ok {
		t.Fatal("UndoMove reported nothing to undo")
	}
	if g.dice[9].GotKilled() {
		t.Error("UndoMove did not revive the captured die")
	}
	if g.board != before.board {
		t.Error("board not restored after undoing a capture")
	}
	if g.dice != before.dice {
		t.Error("dice not restored after undoing a capture")
	}
}

// TestWinnerByKingCapture checks that a dead king immediately decides the
// game, both directly (Kill on the king die) and via a real move that lands
// a die on the king's square.
func TestWinnerByKingCapture(t *testing.T) {
	g := NewGame()
	g.dice[BlackKingIndex].Kill()
	if w := g.Winner(); w != White {
		t.Errorf("Winner() = %v after black king died, want White", w)
	}

	g2 := NewGame()
	g2.dice[WhiteKingIndex].Kill()
	if w := g2.Winner(); w != Black {
		t.Errorf("Winner() = %v after white king died, want Black", w)
	}
}

// TestWinnerByKingCaptureViaMakeMove drives a real adjacent-die move onto
// the enemy king's square and checks that MakeMove's own capture logic
// kills the king and decides the game, rather than asserting Winner's pure
// logic against a directly-killed die.
func TestWinnerByKingCaptureViaMakeMove(t *testing.T) {
	g := NewGame()
	g.board = NewBoard()
	g.dice[BlackKingIndex] = Die{X: 4, Y: 4, Color: Black, Current: KingOrientation}
	g.dice[0] = Die{X: 5, Y: 4, Color: White, Current: 0}
	g.board.Set(4, 4, BlackKingIndex)
	g.board.Set(5, 4, 0)
	g.Next = White

	m := Move{DieIndex: 0, Rel: RelativeMove{DX: -1, DY: 0, FirstX: true}}
	victim := g.MakeMove(m, true)
	if victim != BlackKingIndex {
		t.Fatalf("MakeMove captured die %d, want the black king (%d)", victim, BlackKingIndex)
	}
	if !g.dice[BlackKingIndex].GotKilled() {
		t.Fatal("black king not marked dead after capture")
	}
	if w := g.Winner(); w != White {
		t.Errorf("Winner() = %v after the black king was captured by MakeMove, want White", w)
	}
}

// TestWinnerByReachingHome checks that a king occupying the opponent's home
// square decides the game even with both kings alive.
func TestWinnerByReachingHome(t *testing.T) {
	g := NewGame()
	g.dice[WhiteKingIndex].X = homeX
	g.dice[WhiteKingIndex].Y = whiteHomeY
	if w := g.Winner(); w != White {
		t.Errorf("Winner() = %v with white king home, want White", w)
	}

	g2 := NewGame()
	g2.dice[BlackKingIndex].X = homeX
	g2.dice[BlackKingIndex].Y = blackHomeY
	if w := g2.Winner(); w != Black {
		t.Errorf("Winner() = %v with black king home, want Black", w)
	}
}

// TestKingWalksHome drives the white king onto (4,8) through a sequence of
// legal one-step moves, with the game still undecided until the final step
// lands.
func TestKingWalksHome(t *testing.T) {
	g := NewGame()
	g.board = NewBoard()
	g.dice[WhiteKingIndex] = Die{X: 4, Y: 6, Color: White, Current: KingOrientation}
	g.dice[BlackKingIndex] = Die{X: 8, Y: 8, Color: Black, Current: KingOrientation}
	g.board.Set(4, 6, WhiteKingIndex)
	g.board.Set(8, 8, BlackKingIndex)
	g.Next = White

	step := RelativeMove{DX: 0, DY: 1, FirstX: false}

	m := Move{DieIndex: WhiteKingIndex, Rel: step}
	if !g.IsLegal(m) {
		t.Fatalf("king step %+v not legal from (4,6)", m)
	}
	g.MakeMove(m, true)
	if w := g.Winner(); w != NoColor {
		t.Fatalf("Winner() = %v with the white king on (4,7), want NoColor", w)
	}

	reply := Move{DieIndex: BlackKingIndex, Rel: RelativeMove{DX: 0, DY: -1, FirstX: false}}
	if !g.IsLegal(reply) {
		t.Fatalf("black king step %+v not legal", reply)
	}
	g.MakeMove(reply, true)

	if !g.IsLegal(m) {
		t.Fatalf("king step %+v not legal from (4,7)", m)
	}
	if victim := g.MakeMove(m, true); victim != Empty {
		t.Fatalf("king's final step captured die %d on an empty square", victim)
	}
	if w := g.Winner(); w != White {
		t.Errorf("Winner() = %v with the white king on (4,8), want White", w)
	}
}

func TestWinnerUndecided(t *testing.T) {
	g := NewGame()
	if w := g.Winner(); w != NoColor {
		t.Errorf("Winner() = %v for a fresh game, want NoColor", w)
	}
}
