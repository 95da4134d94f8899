package engine

import "github.com/yourusername/duellengine/internal/fingerprint"

// Fingerprint returns a short base64 identifier for the current position,
// useful for logging and as a cheap equality oracle in tests alongside a
// field-wise comparison. It is not used as a search cache key.
func (g *Game) Fingerprint() string {
	var states [18]fingerprint.DieState
	for i := range g.dice {
		states[i] = fingerprint.DieState{
			X:           g.dice[i].X,
			Y:           g.dice[i].Y,
			Orientation: int(g.dice[i].Current),
		}
	}
	return fingerprint.Encode(states)
}
