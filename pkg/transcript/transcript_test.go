package transcript

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yourusername/duellengine/pkg/engine"
)

func TestWriteReadRoundTrip(t *testing.T) {
	entries := []Entry{
		{Ply: 1, Color: engine.White, Move: engine.Move{DieIndex: 0, Rel: engine.RelativeMove{DX: 0, DY: 5, FirstX: false}}},
		{Ply: 2, Color: engine.Black, Move: engine.Move{DieIndex: 9, Rel: engine.RelativeMove{DX: 3, DY: -2, FirstX: false}}},
		{Ply: 3, Color: engine.White, Move: engine.Move{DieIndex: 4, Rel: engine.RelativeMove{DX: -1, DY: 0, FirstX: true}}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	if _, err := Read(strings.NewReader("1) W4 nonsense\n")); err == nil {
		t.Error("expected an error for a malformed line")
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	got, err := Read(strings.NewReader("\n1) W0 0,5,F\n\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
}

// TestFromGameReplays plays a few plies, transcribes them, and replays the
// transcript against a fresh game: the two games must end on the same
// position.
func TestFromGameReplays(t *testing.T) {
	g := engine.NewGame()
	for i := 0; i < 4; i++ {
		moves := g.LegalMovesForColor(g.Next)
		if len(moves) == 0 {
			t.Fatalf("no legal moves after %d plies", i)
		}
		g.MakeMove(moves[0], true)
	}

	entries := FromGame(g)
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	for i, e := range entries {
		if e.Ply != i+1 {
			t.Errorf("entry %d has ply %d, want %d", i, e.Ply, i+1)
		}
	}
	wantColors := []engine.Color{engine.White, engine.Black, engine.White, engine.Black}
	for i, e := range entries {
		if e.Color != wantColors[i] {
			t.Errorf("entry %d has color %v, want %v", i, e.Color, wantColors[i])
		}
	}

	replay := engine.NewGame()
	for _, e := range entries {
		if !replay.IsLegal(e.Move) {
			t.Fatalf("transcribed move %+v is not legal on replay", e.Move)
		}
		replay.MakeMove(e.Move, true)
	}
	if replay.Fingerprint() != g.Fingerprint() {
		t.Errorf("replayed game fingerprint %s, want %s", replay.Fingerprint(), g.Fingerprint())
	}
}
