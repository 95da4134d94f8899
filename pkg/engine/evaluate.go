package engine

import "gonum.org/v1/gonum/floats"

// Strategy bundles the tunable parameters of the evaluator and search: a
// name (for presets loaded from internal/strategy), the dice-ratio
// coefficient, and the per-ply patience discount.
type Strategy struct {
	Name           string
	CoeffDiceRatio float64
	Patience       float64
}

// DefaultStrategy returns the engine's default coefficients: dice ratio
// weighted 1.0, patience 0.95.
func DefaultStrategy() Strategy {
	return Strategy{Name: "default", CoeffDiceRatio: 1.0, Patience: 0.95}
}

// diceRatioDelta is the per-dead-die contribution to the dice-ratio term,
// before the strategy's coefficient is applied.
const diceRatioDelta = 5.5

// diceRatio folds over every die: -5.5 for each dead die of color, +5.5 for
// each dead die of the opposing color.
func (g *Game) diceRatio(color Color) float64 {
	total := 0.0
	for i := range g.dice {
		d := &g.dice[i]
		if !d.GotKilled() {
			continue
		}
		if d.Color == color {
			total -= diceRatioDelta
		} else {
			total += diceRatioDelta
		}
	}
	return total
}

// Rate returns a static evaluation of the position from color's point of
// view, in [-100, 100]. A decided game returns ±100 outright; otherwise the
// heuristic terms are combined as a dot product against their strategy
// coefficients, so that adding a term later means extending two parallel
// slices rather than rewriting a sum.
func (g *Game) Rate(color Color) float64 {
	if w := g.Winner(); w != NoColor {
		if w == color {
			return 100
		}
		return -100
	}
	coeffs := []float64{g.AIStrategy.CoeffDiceRatio}
	terms := []float64{g.diceRatio(color)}
	return floats.Dot(coeffs, terms)
}
