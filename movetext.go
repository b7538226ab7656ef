package rpgn

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// Movetext rendering. The builder and this formatter are the two
// directions of the same grammar: rendering a tree built from a token
// stream reproduces the stream's text, and re-rendering is idempotent.

// Movetext renders the variation tree to PGN movetext, starting the
// numbering at startPly. The root variation of a standard game starts at
// MoveNumberMin; when a FEN tag overrides the starting position, pass the
// ply derived from it.
func Movetext(v *Variation, startPly MoveNumber) string {
	var sb strings.Builder
	writeMovetext(&sb, v, startPly, true)
	return sb.String()
}

// String renders the variation as movetext numbered from ply 0.
func (v *Variation) String() string {
	return Movetext(v, MoveNumberMin)
}

// writeMovetext recursively writes the moves of v. Each move gets its
// number glyph, even a lone opening move of a sub-variation. Nested
// variations are written depth-first in " ( ... )" groups anchored at the
// ply of the turn they branch from.
func writeMovetext(sb *strings.Builder, v *Variation, ply MoveNumber, veryFirstMove bool) {
	before := v.start
	for _, turn := range v.turns {
		if veryFirstMove {
			veryFirstMove = false
		} else {
			sb.WriteByte(' ')
		}

		writeMoveNumber(sb, ply)
		sb.WriteString(encodeNotation(before, turn.Move()))

		for _, variation := range turn.Variations() {
			sb.WriteString(" (")
			writeMovetext(sb, variation, ply, false)
			sb.WriteString(" )")
		}

		before = turn.Position()
		ply++
	}
}

func writeMoveNumber(sb *strings.Builder, ply MoveNumber) {
	sb.WriteString(strconv.Itoa(int(ply.Number())))
	if ply.Color() == chess.White {
		sb.WriteString(". ")
	} else {
		sb.WriteString("... ")
	}
}

// A NotationLine is a flat list of SAN strings: the mainline skin over a
// variation tree, for callers that do not care about variations.
type NotationLine []string

// String renders the line as movetext numbered from ply 0.
func (l NotationLine) String() string {
	var sb strings.Builder
	for i, san := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeMoveNumber(&sb, MoveNumber(i))
		sb.WriteString(san)
	}
	return sb.String()
}
