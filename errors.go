package rpgn

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// NotationErrorReason classifies why a piece of move notation could not be
// resolved to a legal move.
type NotationErrorReason uint8

const (
	// NotationMalformed means the text is not syntactically valid notation.
	NotationMalformed NotationErrorReason = iota
	// NotationIllegal means the text is well formed but matches no legal
	// move in the position.
	NotationIllegal
	// NotationAmbiguous means the text resolves to more than one legal
	// move. This is a notation defect, not a legality defect.
	NotationAmbiguous
)

func (r NotationErrorReason) String() string {
	switch r {
	case NotationMalformed:
		return "malformed"
	case NotationIllegal:
		return "illegal"
	case NotationAmbiguous:
		return "ambiguous"
	}
	return "unknown"
}

// A NotationError reports that notation text could not be played.
// Ply identifies where in the line the failure occurred.
type NotationError struct {
	Text   string
	Reason NotationErrorReason
	Ply    MoveNumber
}

func (e *NotationError) Error() string {
	color := "white"
	if e.Ply.Color() == chess.Black {
		color = "black"
	}
	return fmt.Sprintf("rpgn: %s notation %q at %s's move %d", e.Reason, e.Text, color, e.Ply.Number())
}

// An IllegalMoveError reports that a move is not legal in the position it
// was played on.
type IllegalMoveError struct {
	Move *chess.Move
	Ply  MoveNumber
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("rpgn: illegal move %s at ply %d", e.Move, e.Ply)
}

// A PositionMismatchError reports an attempt to attach a child variation
// whose starting position does not match the branch point. It is always
// rejected, never coerced: a variation recorded under the wrong ply would
// corrupt every downstream lookup.
type PositionMismatchError struct {
	Ply      MoveNumber
	Expected string // FEN of the branch-point position
	Got      string // FEN of the child's starting position
}

func (e *PositionMismatchError) Error() string {
	return fmt.Sprintf("rpgn: variation at ply %d starts from %q, branch point is %q", e.Ply, e.Got, e.Expected)
}

// A NoSuchPlyError reports an index-based lookup past the end of a variation.
type NoSuchPlyError struct {
	Ply MoveNumber
	Len int
}

func (e *NoSuchPlyError) Error() string {
	return fmt.Sprintf("rpgn: no ply %d in a variation of %d turns", e.Ply, e.Len)
}

// ErrNoGame is returned when a reader contains no game at all.
var ErrNoGame = errors.New("rpgn: no game found")
