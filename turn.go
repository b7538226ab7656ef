package rpgn

import (
	"github.com/notnil/chess"
)

// DefaultVariationCapacity is the variation slice capacity used by the
// convenience constructors. Most turns carry no variations at all.
const DefaultVariationCapacity = 2

// A Turn is one played move together with the position that results from
// playing it and the alternative continuations branching from the position
// immediately before it.
//
// The cached position is computed once at construction and never
// recomputed; legality of the move is enforced when the Turn is created
// (by Variation.Play and friends), never after.
type Turn struct {
	move       *chess.Move
	position   *chess.Position // position after the move
	variations []*Variation
}

func newTurn(move *chess.Move, after *chess.Position, variationsCapacity int) *Turn {
	return &Turn{
		move:       move,
		position:   after,
		variations: make([]*Variation, 0, variationsCapacity),
	}
}

// Move returns the move played in this turn.
func (t *Turn) Move() *chess.Move {
	return t.move
}

// Position returns the cached position after the move was played.
func (t *Turn) Position() *chess.Position {
	return t.position
}

// Variations returns the alternative continuations branching from the
// position before this turn's move.
func (t *Turn) Variations() []*Variation {
	return t.variations
}

// pushVariation attaches an alternative line. The caller
// (Variation.InsertVariation) has already verified the branch-point
// invariant.
func (t *Turn) pushVariation(v *Variation) {
	t.variations = append(t.variations, v)
}

// RemoveVariation detaches and returns the i-th alternative line, or nil
// if there is no such variation.
func (t *Turn) RemoveVariation(i int) *Variation {
	if i < 0 || i >= len(t.variations) {
		return nil
	}
	v := t.variations[i]
	t.variations = append(t.variations[:i], t.variations[i+1:]...)
	return v
}
