package rpgn

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// A Builder assembles a variation tree from a flat event stream:
// Header, SAN, BeginVariation, EndVariation, EndGame. The stream
// itself has no notion of ply or of which variation is currently open;
// the builder reconstructs both with a depth stack.
//
// A builder is good for exactly one game. After the first failed move,
// remaining move and variation events are skipped until EndGame: a
// malformed game must surface one error identifying the ply and token,
// not silently become a truncated-but-valid tree.
type Builder struct {
	game *Game
	root *Variation
	// absolute ply of the root variation's first move; nonzero only when a
	// FEN tag re-anchors the game
	rootAnchor MoveNumber

	// stack of open variations, innermost last
	open []builderFrame
	// absolute ply of the next move in the currently open line
	ply MoveNumber

	err  *NotationError
	done bool
}

// builderFrame is one open variation plus the absolute ply it branches
// from. anchor is also the absolute ply of the variation's first move,
// which keeps every frame in the same global ply space as the root.
type builderFrame struct {
	variation *Variation
	anchor    MoveNumber
	parentPly int // index into the parent variation's turns
}

// NewBuilder returns a builder for one game starting from the standard
// initial position.
func NewBuilder() *Builder {
	root := NewVariation(chess.StartingPosition(), DefaultTurnCapacity)
	return &Builder{
		game: &Game{Extra: map[string]string{}, Root: root},
		root: root,
	}
}

// Header records a tag pair. Typed tags (Date, Round, Result, ECO,
// TimeControl, Elos, FEN) are parsed into their field types; parse
// failures leave the raw value in Extra rather than failing the game.
// A FEN tag re-anchors the root variation and is only honored while no
// move has been played.
func (b *Builder) Header(key, value string) {
	if b.done {
		return
	}
	g := b.game
	switch strings.ToLower(key) {
	case "event":
		g.Event = value
		return
	case "site":
		g.Site = value
		return
	case "white":
		g.White = value
		return
	case "black":
		g.Black = value
		return
	case "whiteelo":
		if n, err := strconv.ParseUint(value, 10, 16); err == nil {
			g.WhiteElo = uint16(n)
			return
		}
	case "blackelo":
		if n, err := strconv.ParseUint(value, 10, 16); err == nil {
			g.BlackElo = uint16(n)
			return
		}
	case "date":
		if d, err := ParseDate(value); err == nil {
			g.Date = &d
			return
		}
	case "round":
		if r, err := ParseRound(value); err == nil {
			g.Round = &r
			return
		}
	case "result":
		if o, err := ParseOutcome(value); err == nil {
			g.Outcome = o
			return
		}
	case "eco":
		if e, err := ParseECO(value); err == nil {
			g.ECO = &e
			return
		}
	case "timecontrol":
		if tc, err := ParseTimeControl(value); err == nil {
			g.TimeControl = &tc
			return
		}
	case "fen":
		if len(b.open) > 0 || b.root.Len() > 0 {
			break
		}
		pos := &chess.Position{}
		if err := pos.UnmarshalText([]byte(value)); err == nil {
			g.Setup = value
			b.root.start = pos
			b.rootAnchor = startingPly(pos)
			b.ply = b.rootAnchor
			return
		}
	}
	// unknown tag, or a typed tag whose value failed to parse; keep the
	// raw pair so rendering does not silently drop information
	g.Extra[key] = value
}

// current returns the innermost open variation, or the root.
func (b *Builder) current() *Variation {
	if len(b.open) == 0 {
		return b.root
	}
	return b.open[len(b.open)-1].variation
}

// currentAnchor returns the absolute ply of the first move of the
// innermost open variation.
func (b *Builder) currentAnchor() MoveNumber {
	if len(b.open) == 0 {
		return b.rootAnchor
	}
	return b.open[len(b.open)-1].anchor
}

// SAN plays one move in the currently open line and advances the ply
// counter. After a failure every further SAN is skipped.
func (b *Builder) SAN(text string) {
	if b.done || b.err != nil {
		return
	}
	cur := b.current()
	if cur == nil {
		// inside a skipped variation group
		return
	}
	move, nerr := resolveNotation(cur.LastPosition(), text, b.ply)
	if nerr != nil {
		b.err = nerr
		return
	}
	// resolveNotation guarantees legality, so Play cannot fail here.
	if err := cur.Play(move); err != nil {
		b.err = &NotationError{Text: text, Reason: NotationIllegal, Ply: b.ply}
		return
	}
	b.ply++
}

// BeginVariation opens an alternative to the move just appended in the
// currently open line. The branch starts before that move, not after it,
// so the ply counter steps back by one and the new variation anchors to
// the position at the branch ply.
func (b *Builder) BeginVariation() {
	if b.done || b.err != nil {
		// keep the stack balanced so EndVariation skipping stays symmetric
		b.open = append(b.open, builderFrame{})
		return
	}
	parent := b.current()
	if parent == nil {
		// nested inside a skipped group
		b.open = append(b.open, builderFrame{})
		return
	}
	branch := b.ply - 1
	rel := int(branch - b.currentAnchor())
	before, err := parent.PositionBefore(rel)
	if err != nil {
		// variation with no preceding move in the open context; feed
		// contract violation, skip the whole group
		b.open = append(b.open, builderFrame{})
		return
	}
	b.open = append(b.open, builderFrame{
		variation: NewVariation(before, DefaultTurnCapacity/8),
		anchor:    branch,
		parentPly: rel,
	})
	b.ply = branch
}

// EndVariation closes the innermost open variation, attaches it to its
// parent at the ply recorded when it was opened, and restores the ply
// counter to branch ply + 1 so sibling moves keep numbering correctly.
// The restore is exactly symmetric with BeginVariation's decrement.
func (b *Builder) EndVariation() {
	if b.done || len(b.open) == 0 {
		return
	}
	frame := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]
	if frame.variation == nil {
		// skipped group
		return
	}
	if frame.variation.Len() > 0 {
		// attach even when a later move errored: everything parsed before
		// the fault stays reachable
		_ = b.current().InsertVariation(frame.parentPly, frame.variation)
	}
	b.ply = frame.anchor + 1
}

// EndGame finalizes the build. Still-open variations (truncated input)
// are attached bottom-up, best effort. If a move failed, the recorded
// error is returned and the game keeps every turn before the fault.
func (b *Builder) EndGame() (*Game, error) {
	if b.done {
		return b.game, nil
	}
	for len(b.open) > 0 {
		b.EndVariation()
	}
	b.done = true
	if b.err != nil {
		return b.game, b.err
	}
	return b.game, nil
}

// startingPly derives the absolute ply of the next move from a position's
// FEN move counters.
func startingPly(pos *chess.Position) MoveNumber {
	fields := strings.Fields(pos.String())
	if len(fields) != 6 {
		return MoveNumberMin
	}
	number, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil || number == 0 {
		return MoveNumberMin
	}
	ply, err := MoveNumberFrom(pos.Turn(), uint16(number))
	if err != nil {
		return MoveNumberMin
	}
	return ply
}
