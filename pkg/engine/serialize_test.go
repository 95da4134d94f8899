package engine

import "testing"

func TestSerializeRoundTripFreshGame(t *testing.T) {
	g := NewGame()
	g.AIStrategy = DefaultStrategy()
	g.AIDepth = 3

	data := g.Serialize()
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if got.board != g.board {
		t.Error("board not preserved by serialize/deserialize round trip")
	}
	if got.dice != g.dice {
		t.Error("dice not preserved by serialize/deserialize round trip")
	}
	if got.Next != g.Next || got.Mode != g.Mode || got.AIDepth != g.AIDepth {
		t.Error("scalar fields not preserved by serialize/deserialize round trip")
	}
	if got.AIStrategy != g.AIStrategy {
		t.Errorf("strategy not preserved: got %+v, want %+v", got.AIStrategy, g.AIStrategy)
	}
	if got.Fingerprint() != g.Fingerprint() {
		t.Errorf("fingerprint changed across round trip: got %s, want %s", got.Fingerprint(), g.Fingerprint())
	}
}

func TestSerializeRoundTripWithHistory(t *testing.T) {
	g := NewGame()
	for i := 0; i < 3; i++ {
		moves := g.LegalMovesForColor(g.Next)
		if len(moves) == 0 {
			t.Fatalf("no legal moves after %d plies", i)
		}
		g.MakeMove(moves[0], true)
	}
	g.UndoMove()

	data := g.Serialize()
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if got.board != g.board || got.dice != g.dice || got.Next != g.Next {
		t.Error("position not preserved across a round trip with move history")
	}
	if got.Fingerprint() != g.Fingerprint() {
		t.Errorf("fingerprint changed across round trip: got %s, want %s", got.Fingerprint(), g.Fingerprint())
	}
	wantMove, wantOK := g.LastMove()
	gotMove, gotOK := got.LastMove()
	if gotOK != wantOK || gotMove != wantMove {
		t.Errorf("LastMove() = (%+v, %v), want (%+v, %v)", gotMove, gotOK, wantMove, wantOK)
	}
	if len(got.moveStack) != len(g.moveStack) {
		t.Fatalf("moveStack length = %d, want %d", len(got.moveStack), len(g.moveStack))
	}
	for i := range g.moveStack {
		if got.moveStack[i] != g.moveStack[i] {
			t.Errorf("moveStack[%d] = %+v, want %+v", i, got.moveStack[i], g.moveStack[i])
		}
	}
	if len(got.redoMoveStack) != len(g.redoMoveStack) {
		t.Fatalf("redoMoveStack length = %d, want %d", len(got.redoMoveStack), len(g.redoMoveStack))
	}
}

func TestDeserializeRejectsUnknownKey(t *testing.T) {
	_, err := Deserialize(`{bogus=1}`)
	if err == nil {
		t.Fatal("expected an error for an unknown top-level key")
	}
}

func TestDeserializeRejectsUnbalancedDelimiters(t *testing.T) {
	_, err := Deserialize(`{mode=0,next=0`)
	if err == nil {
		t.Fatal("expected an error for a truncated document")
	}
}
