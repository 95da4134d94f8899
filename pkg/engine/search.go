package engine

import (
	"math"
	"sync/atomic"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Search carries the state that must outlive a single evaluateMoves call but
// must not be global: the cancellation flag an external task can set, and
// the tie-break RNG. Passing it explicitly (rather than through package
// globals) is what lets two games search concurrently without interfering.
type Search struct {
	Cancel atomic.Bool
	rng    distuv.Uniform
}

// NewSearch returns a Search seeded from seed. The same seed always produces
// the same sequence of root tie-break picks for a given sequence of calls.
func NewSearch(seed int64) *Search {
	return &Search{
		rng: distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(uint64(seed))},
	}
}

// rootCandidate is a move that improved alpha at the root, kept
// so the final pick can be drawn uniformly among the best-rated ones.
type rootCandidate struct {
	rating float64
	move   Move
}

// EvaluateNext runs the negamax search from g's current position and returns
// a rating and, at the root, a chosen best move (nil if none was legal or
// the search was cancelled). depth counts plies, one per recursive call.
// g's board, dice and side to move are left exactly as they were found
// regardless of how deep the search recursed; g.Phase ends as Cancelled if
// the search was cancelled and as Idle otherwise.
func (s *Search) EvaluateNext(g *Game, depth int) (float64, *Move) {
	g.Phase = Evaluating
	rating, move := s.evaluateMoves(g, depth, math.Inf(-1), math.Inf(1), true)
	if s.Cancel.Load() {
		g.Phase = Cancelled
	} else {
		g.Phase = Idle
	}
	return rating, move
}

// evaluateMoves is negamax with alpha-beta pruning, including a literal
// beta-cutoff-returns-without-a-candidate behavior at the root: a cutoff
// ends the call before any move at that rating is recorded, even if it is
// the best one found. That asymmetry is intentional, not a bug: it keeps
// the cutoff path cheap by skipping root bookkeeping it will never use.
func (s *Search) evaluateMoves(g *Game, depth int, alpha, beta float64, isRoot bool) (float64, *Move) {
	if depth == 0 || g.Winner() != NoColor {
		return g.Rate(g.Next), nil
	}

	var candidates []rootCandidate
	lo, hi := ColorRange(g.Next)
	for i := lo; i < hi; i++ {
		if g.dice[i].GotKilled() {
			continue
		}
		for _, r := range PossibleMovesForValue(g.dice[i].Value()) {
			if s.Cancel.Load() {
				return 0.0, nil
			}
			m := Move{DieIndex: i, Rel: r}
			if !g.IsLegal(m) {
				continue
			}

			victim := g.MakeMove(m, false)
			childRating, _ := s.evaluateMoves(g, depth-1, -beta, -alpha, false)
			childRating = -g.AIStrategy.Patience * childRating
			g.MakeMove(m.Invert(), false)
			if victim != Empty {
				g.dice[victim].Revive()
				g.board.Set(g.dice[victim].X, g.dice[victim].Y, victim)
			}

			if childRating >= beta {
				return childRating, nil
			}
			if childRating > alpha {
				alpha = childRating
				if isRoot {
					candidates = append(candidates, rootCandidate{rating: childRating, move: m})
				}
			}
		}
	}

	if isRoot && len(candidates) > 0 {
		best := s.pickBest(candidates)
		return best.rating, &best.move
	}
	return alpha, nil
}

// pickBest returns a uniformly random candidate among those tied for the
// highest rating in candidates.
func (s *Search) pickBest(candidates []rootCandidate) rootCandidate {
	top := candidates[0].rating
	for _, c := range candidates[1:] {
		if c.rating > top {
			top = c.rating
		}
	}
	var winners []rootCandidate
	for _, c := range candidates {
		if c.rating >= top {
			winners = append(winners, c)
		}
	}
	idx := int(s.rng.Rand() * float64(len(winners)))
	if idx >= len(winners) {
		idx = len(winners) - 1
	}
	return winners[idx]
}
