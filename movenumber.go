package rpgn

import (
	"fmt"

	"github.com/notnil/chess"
)

// A MoveNumber is a single ply index that linearizes side-to-move and
// move count. Ply 0 is white's first move, ply 1 is black's first move,
// ply 2 is white's second move, and so on. It is called an index because
// it starts at 0, as opposed to the move numbers shown in a PGN.
type MoveNumber uint16

// MoveNumberMin is the lowest move number: white's first move.
const MoveNumberMin MoveNumber = 0

// MoveNumberFrom builds a MoveNumber from a color and the 1-based number
// shown in a PGN. MoveNumberFrom(White, 1) is ply 0, MoveNumberFrom(Black, 1)
// is ply 1.
func MoveNumberFrom(color chess.Color, number uint16) (MoveNumber, error) {
	if number == 0 {
		return 0, fmt.Errorf("rpgn: move number must be 1 or greater")
	}
	if color == chess.Black {
		return MoveNumber((number-1)*2 + 1), nil
	}
	return MoveNumber((number - 1) * 2), nil
}

// Color returns the side that plays this ply.
func (n MoveNumber) Color() chess.Color {
	if n%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// Number is the number of the move as it is shown in a PGN.
// White's first move has an index of 0 but a number of 1; black's first
// move has an index of 1 and also a number of 1.
func (n MoveNumber) Number() uint16 {
	return 1 + uint16(n)/2
}

// WhiteMoveCount returns how many moves white has played before this ply
// was reached.
func (n MoveNumber) WhiteMoveCount() uint16 {
	return (uint16(n) + 1) / 2
}

// BlackMoveCount returns how many moves black has played before this ply
// was reached.
func (n MoveNumber) BlackMoveCount() uint16 {
	return uint16(n) / 2
}
