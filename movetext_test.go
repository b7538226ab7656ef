package rpgn

import (
	"testing"

	"github.com/notnil/chess"
)

func TestMovetextMainlineOnly(t *testing.T) {
	v := NewVariation(chess.StartingPosition(), 0)
	playLine(t, v, "g4", "e5", "f3", "Qh4")
	if got := v.String(); got != "1. g4 1... e5 2. f3 2... Qh4#" {
		t.Fatalf("unexpected movetext %q", got)
	}
}

func TestMovetextEmpty(t *testing.T) {
	v := NewVariation(chess.StartingPosition(), 0)
	if got := v.String(); got != "" {
		t.Fatalf("expected empty movetext but got %q", got)
	}
}

func TestMovetextSingleMove(t *testing.T) {
	v := NewVariation(chess.StartingPosition(), 0)
	playLine(t, v, "e4")
	if got := v.String(); got != "1. e4" {
		t.Fatalf("unexpected movetext %q", got)
	}
}

// buildNestedTree constructs the tree of a game with nested variations by
// hand, the same tree the text below parses to:
//
//	1. e4 ( 1. d4 1... d5 ( 1... f5 ) ) 1... e5 2. Nf3 2... Nc6 3. Bc4 3... Nf6 ( 3... Bc5 ) 4. Nc3
func buildNestedTree(t *testing.T) *Variation {
	t.Helper()
	root := NewVariation(chess.StartingPosition(), 0)
	playLine(t, root, "e4", "e5", "Nf3", "Nc6", "Bc4", "Nf6", "Nc3")

	bc5Ply, err := MoveNumberFrom(chess.Black, 3)
	if err != nil {
		t.Fatal(err)
	}
	before, err := root.PositionBefore(int(bc5Ply))
	if err != nil {
		t.Fatal(err)
	}
	bc5 := NewVariation(before, 1)
	playLine(t, bc5, "Bc5")

	d4 := NewVariation(root.StartingPosition(), 2)
	playLine(t, d4, "d4", "d5")

	before, err = d4.PositionBefore(1)
	if err != nil {
		t.Fatal(err)
	}
	f5 := NewVariation(before, 1)
	playLine(t, f5, "f5")

	if err := d4.InsertVariation(1, f5); err != nil {
		t.Fatal(err)
	}
	if err := root.InsertVariation(0, d4); err != nil {
		t.Fatal(err)
	}
	if err := root.InsertVariation(int(bc5Ply), bc5); err != nil {
		t.Fatal(err)
	}
	return root
}

// Rendering the hand-built tree must reproduce the exact text it was
// transcribed from.
func TestMovetextNestedVariations(t *testing.T) {
	const want = "1. e4 ( 1. d4 1... d5 ( 1... f5 ) ) 1... e5 2. Nf3 2... Nc6 3. Bc4 3... Nf6 ( 3... Bc5 ) 4. Nc3"
	root := buildNestedTree(t)
	if got := root.String(); got != want {
		t.Fatalf("unexpected movetext\n got: %q\nwant: %q", got, want)
	}
	if again := root.String(); again != want {
		t.Fatal("re-rendering is not idempotent")
	}
}

func TestMovetextStartPly(t *testing.T) {
	v := NewVariation(chess.StartingPosition(), 0)
	playLine(t, v, "e4", "e5")

	ply, err := MoveNumberFrom(chess.White, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := Movetext(v, ply); got != "10. e4 10... e5" {
		t.Fatalf("unexpected movetext %q", got)
	}
}

func TestNotationLineString(t *testing.T) {
	line := NotationLine{"Nf3", "a6", "d3", "a5"}
	if got := line.String(); got != "1. Nf3 1... a6 2. d3 2... a5" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := (NotationLine{}).String(); got != "" {
		t.Fatalf("expected empty string but got %q", got)
	}
}
