package rpgn

import (
	"github.com/notnil/chess"
)

// DefaultTurnCapacity is the turn slice capacity used when no hint is
// given to NewVariation.
const DefaultTurnCapacity = 64

// A Variation is an always-legal line of play: an ordered sequence of
// Turns anchored to a starting position. The root variation of a game
// anchors to the initial position (or the position of a FEN tag); a
// nested variation anchors to the position before the turn it branches
// from.
//
// For every adjacent pair of turns, the second's pre-move position equals
// the first's post-move position; the first turn's pre-move position is
// the starting position. There is no insert-in-the-middle operation
// because it would invalidate every turn after the insertion point.
//
// A finished Variation is immutable by convention: readers may call the
// position lookups freely from multiple goroutines. The mutating methods
// require exclusive access, like any plain tree.
type Variation struct {
	start *chess.Position
	turns []*Turn
}

// NewVariation returns an empty variation anchored to start.
// capacityHint preallocates the turn slice; pass 0 for the default.
func NewVariation(start *chess.Position, capacityHint int) *Variation {
	if capacityHint <= 0 {
		capacityHint = DefaultTurnCapacity
	}
	return &Variation{
		start: start,
		turns: make([]*Turn, 0, capacityHint),
	}
}

// StartingPosition returns the position before the first turn.
func (v *Variation) StartingPosition() *chess.Position {
	return v.start
}

// Turns returns the turns of this variation in order.
func (v *Variation) Turns() []*Turn {
	return v.turns
}

// Len returns the number of turns.
func (v *Variation) Len() int {
	return len(v.turns)
}

// Turn returns the turn at the given ply within this variation, counted
// from 0, or nil if there is no such ply.
func (v *Variation) Turn(ply int) *Turn {
	if ply < 0 || ply >= len(v.turns) {
		return nil
	}
	return v.turns[ply]
}

// LastPosition returns the position after the last turn, which is the
// starting position while the variation is empty. O(1): positions are
// cached per turn.
func (v *Variation) LastPosition() *chess.Position {
	if len(v.turns) == 0 {
		return v.start
	}
	return v.turns[len(v.turns)-1].Position()
}

// PositionBefore returns the position before the move at the given ply
// within this variation.
func (v *Variation) PositionBefore(ply int) (*chess.Position, error) {
	if ply < 0 || ply >= len(v.turns) {
		return nil, &NoSuchPlyError{Ply: MoveNumber(ply), Len: len(v.turns)}
	}
	if ply == 0 {
		return v.start, nil
	}
	return v.turns[ply-1].Position(), nil
}

// PositionAfter returns the position after the move at the given ply
// within this variation.
func (v *Variation) PositionAfter(ply int) (*chess.Position, error) {
	if ply < 0 || ply >= len(v.turns) {
		return nil, &NoSuchPlyError{Ply: MoveNumber(ply), Len: len(v.turns)}
	}
	return v.turns[ply].Position(), nil
}

// Play attempts to play a move in the last position. On success a new
// turn is appended, its post-move position computed once and cached.
func (v *Variation) Play(move *chess.Move) error {
	last := v.LastPosition()
	canonical := legalMove(last, move)
	if canonical == nil {
		return &IllegalMoveError{Move: move, Ply: MoveNumber(len(v.turns))}
	}
	v.turns = append(v.turns, newTurn(canonical, last.Update(canonical), DefaultVariationCapacity))
	return nil
}

// PlayNotation resolves SAN text in the last position and plays it.
// The returned *NotationError distinguishes malformed, illegal and
// ambiguous notation.
func (v *Variation) PlayNotation(text string) error {
	last := v.LastPosition()
	move, nerr := resolveNotation(last, text, MoveNumber(len(v.turns)))
	if nerr != nil {
		return nerr
	}
	v.turns = append(v.turns, newTurn(move, last.Update(move), DefaultVariationCapacity))
	return nil
}

// Pop removes and returns the last turn, or nil if the variation is empty.
func (v *Variation) Pop() *Turn {
	if len(v.turns) == 0 {
		return nil
	}
	t := v.turns[len(v.turns)-1]
	v.turns = v.turns[:len(v.turns)-1]
	return t
}

// InsertVariation attaches child as an alternative to the turn at the
// given ply. The child's starting position must equal PositionBefore(ply);
// a mismatch returns a *PositionMismatchError and leaves the tree
// unmodified. This is the structural corruption guard of the whole tree:
// a child recorded under the wrong ply silently corrupts every downstream
// lookup and every rendering.
func (v *Variation) InsertVariation(ply int, child *Variation) error {
	before, err := v.PositionBefore(ply)
	if err != nil {
		return err
	}
	if !positionsEqual(before, child.StartingPosition()) {
		return &PositionMismatchError{
			Ply:      MoveNumber(ply),
			Expected: before.String(),
			Got:      child.StartingPosition().String(),
		}
	}
	v.turns[ply].pushVariation(child)
	return nil
}

// TruncateAndReplay replaces the move at the given ply and discards every
// turn after it: their cached positions are derived from the replaced
// history and are no longer valid. The error taxonomy is the same as
// Play's.
func (v *Variation) TruncateAndReplay(ply int, move *chess.Move) error {
	before, err := v.PositionBefore(ply)
	if err != nil {
		return err
	}
	canonical := legalMove(before, move)
	if canonical == nil {
		return &IllegalMoveError{Move: move, Ply: MoveNumber(ply)}
	}
	v.turns = v.turns[:ply]
	v.turns = append(v.turns, newTurn(canonical, before.Update(canonical), DefaultVariationCapacity))
	return nil
}

// MainlineNotations flattens this variation to the SAN of each of its
// turns, discarding nested variations. It is a projection over the
// canonical tree, not an alternative representation of it.
func (v *Variation) MainlineNotations() NotationLine {
	line := make(NotationLine, 0, len(v.turns))
	before := v.start
	for _, t := range v.turns {
		line = append(line, encodeNotation(before, t.Move()))
		before = t.Position()
	}
	return line
}
