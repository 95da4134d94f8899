// Package transcript reads and writes a human-readable log of the moves
// played in a game, line-oriented and regexp-parsed in the style of a
// Jellyfish MAT move list. It is a printable move log, distinct from
// pkg/engine's own save-file serialization of full game state: a transcript
// can be replayed move-by-move but carries no dice orientations, undo/redo
// stacks, or strategy parameters.
package transcript

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/duellengine/pkg/engine"
)

// Entry is one played ply: who moved and what move they made.
type Entry struct {
	Ply   int
	Color engine.Color
	Move  engine.Move
}

// lineRE matches "N) <W|B><dieIndex> <dx>,<dy>,<T|F>", e.g. "1) W4 0,5,T".
var lineRE = regexp.MustCompile(`^(\d+)\)\s+([WB])(\d+)\s+(-?\d+),(-?\d+),([TF])\s*$`)

// Write emits entries one per line.
func Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		col := "W"
		if e.Color == engine.Black {
			col = "B"
		}
		fx := "F"
		if e.Move.Rel.FirstX {
			fx = "T"
		}
		if _, err := fmt.Fprintf(w, "%d) %s%d %d,%d,%s\n",
			e.Ply, col, e.Move.DieIndex, e.Move.Rel.DX, e.Move.Rel.DY, fx); err != nil {
			return fmt.Errorf("transcript: write: %w", err)
		}
	}
	return nil
}

// Read parses a transcript previously produced by Write.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("transcript: malformed line %q", line)
		}
		ply, _ := strconv.Atoi(m[1])
		color := engine.White
		if m[2] == "B" {
			color = engine.Black
		}
		dieIndex, _ := strconv.Atoi(m[3])
		dx, _ := strconv.Atoi(m[4])
		dy, _ := strconv.Atoi(m[5])
		entries = append(entries, Entry{
			Ply:   ply,
			Color: color,
			Move: engine.Move{
				DieIndex: dieIndex,
				Rel:      engine.RelativeMove{DX: dx, DY: dy, FirstX: m[6] == "T"},
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	return entries, nil
}

// colorOfDie reports the fixed color of a die index: White occupies 0-8,
// Black 9-17, matching engine.ColorRange.
func colorOfDie(dieIndex int) engine.Color {
	if dieIndex < 9 {
		return engine.White
	}
	return engine.Black
}

// FromGame builds a transcript of every move g has executed so far.
func FromGame(g *engine.Game) []Entry {
	history := g.MoveHistory()
	entries := make([]Entry, len(history))
	for i, m := range history {
		entries[i] = Entry{Ply: i + 1, Color: colorOfDie(m.DieIndex), Move: m}
	}
	return entries
}
