package engine

import "testing"

// TestSearchDeterministicForFixedSeed checks that the same seed against the
// same game position picks the same move every time and never mutates the
// game.
func TestSearchDeterministicForFixedSeed(t *testing.T) {
	g := NewGame()
	g.AIStrategy = DefaultStrategy()
	before := *g

	var ratings []float64
	var moves []Move
	for i := 0; i < 3; i++ {
		s := NewSearch(42)
		rating, best := s.EvaluateNext(g, 2)
		if best == nil {
			t.Fatal("search found no legal move from the starting position")
		}
		ratings = append(ratings, rating)
		moves = append(moves, *best)
	}

	for i := 1; i < len(moves); i++ {
		if moves[i] != moves[0] {
			t.Errorf("run %d picked %+v, run 0 picked %+v", i, moves[i], moves[0])
		}
		if ratings[i] != ratings[0] {
			t.Errorf("run %d rated %v, run 0 rated %v", i, ratings[i], ratings[0])
		}
	}

	if g.board != before.board || g.dice != before.dice || g.Next != before.Next {
		t.Error("EvaluateNext left the game mutated")
	}
}

// TestSearchCancellationBeforeFirstMove checks that a search cancelled
// before it evaluates anything returns (0.0, nil) and leaves the game
// untouched.
func TestSearchCancellationBeforeFirstMove(t *testing.T) {
	g := NewGame()
	g.AIStrategy = DefaultStrategy()
	before := *g

	s := NewSearch(1)
	s.Cancel.Store(true)

	rating, best := s.EvaluateNext(g, 3)
	if best != nil {
		t.Errorf("cancelled search returned a move: %+v", best)
	}
	if rating != 0.0 {
		t.Errorf("cancelled search returned rating %v, want 0.0", rating)
	}
	if g.board != before.board || g.dice != before.dice || g.Next != before.Next {
		t.Error("cancelled search left the board dirty")
	}

	moves := g.LegalMovesForColor(g.Next)
	if len(moves) == 0 {
		t.Fatal("no legal moves after a cancelled search")
	}
	g.MakeMove(moves[0], true)
	if _, ok := g.LastMove(); !ok {
		t.Error("MakeMove after a cancelled search did not record")
	}
}

func TestSearchDepthZeroRatesWithoutRecursing(t *testing.T) {
	g := NewGame()
	g.AIStrategy = DefaultStrategy()
	s := NewSearch(7)
	rating, best := s.EvaluateNext(g, 0)
	if best != nil {
		t.Errorf("depth 0 search returned a move: %+v", best)
	}
	want := g.Rate(g.Next)
	if rating != want {
		t.Errorf("depth 0 rating = %v, want %v", rating, want)
	}
}
