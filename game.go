/*
Package rpgn parses and serializes chess games in Portable Game Notation
with full support for nested variations: a mainline of moves where, at any
move, alternative continuations may branch off, each of which may itself
contain further nested alternatives to unbounded depth.

The package maintains a tree-shaped, always-legal move history. Chess
rules, move application and SAN encoding are delegated to the
notnil/chess engine; this package owns the turn/variation tree, its
streaming construction from a token feed, position lookup at any ply of
any branch, and byte-exact rendering.

Example usage:

	games, err := rpgn.ReadGames(strings.NewReader(pgn))

	v := rpgn.NewVariation(chess.StartingPosition(), 0)
	v.PlayNotation("e4")
	v.PlayNotation("e5")
	fmt.Println(v) // 1. e4 1... e5
*/
package rpgn

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/notnil/chess"
	"golang.org/x/exp/maps"
)

// An Outcome is the result of a game.
type Outcome string

const (
	UnknownOutcome Outcome = ""
	// NoOutcome indicates that a game is in progress or ended without a result.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
	// Draw indicates that the game was a draw.
	Draw Outcome = "1/2-1/2"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// ParseOutcome parses a result tag value.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case NoOutcome, WhiteWon, BlackWon, Draw:
		return Outcome(s), nil
	}
	return UnknownOutcome, fmt.Errorf("rpgn: %q is not a game outcome", s)
}

// A Game pairs a root variation with the game's header fields. The typed
// fields cover the seven tag roster plus the common supplemental tags;
// anything else lands in Extra. Zero values mean the tag is absent
// (a nil pointer, an empty string, a zero Elo).
type Game struct {
	Event       string
	Site        string
	Date        *Date
	Round       *Round
	White       string
	Black       string
	WhiteElo    uint16
	BlackElo    uint16
	Outcome     Outcome
	ECO         *ECO
	TimeControl *TimeControl
	// Setup is the raw FEN tag value; the root variation is anchored to
	// the position it describes.
	Setup string
	// Extra holds tags with no typed field, in no particular order.
	// Rendering sorts them for determinism.
	Extra map[string]string

	// Root is the mainline with every nested variation hanging off it.
	Root *Variation
}

// NewGame returns an empty game whose root variation starts from the
// standard initial position.
func NewGame() *Game {
	return &Game{
		Extra: map[string]string{},
		Root:  NewVariation(chess.StartingPosition(), DefaultTurnCapacity),
	}
}

// ErrMissingRosterTag is wrapped by the SevenTagRoster errors.
var ErrMissingRosterTag = errors.New("rpgn: missing seven tag roster tag")

// SevenTagRoster reports the first missing mandatory tag of the PGN
// export format's seven tag roster, or nil if the game carries all of
// them.
func (g *Game) SevenTagRoster() error {
	switch {
	case g.Event == "":
		return fmt.Errorf("%w: Event", ErrMissingRosterTag)
	case g.Site == "":
		return fmt.Errorf("%w: Site", ErrMissingRosterTag)
	case g.Date == nil:
		return fmt.Errorf("%w: Date", ErrMissingRosterTag)
	case g.Round == nil:
		return fmt.Errorf("%w: Round", ErrMissingRosterTag)
	case g.White == "":
		return fmt.Errorf("%w: White", ErrMissingRosterTag)
	case g.Black == "":
		return fmt.Errorf("%w: Black", ErrMissingRosterTag)
	case g.Outcome == UnknownOutcome:
		return fmt.Errorf("%w: Result", ErrMissingRosterTag)
	}
	return nil
}

// String renders the game as `<headers>\n\n<movetext>`. Each present
// header renders as a `[Key "Value"]` line in the export format's order;
// extra tags follow in sorted order. Rendering is deterministic and
// idempotent.
func (g *Game) String() string {
	var sb strings.Builder

	writeTag := func(key, value string) {
		sb.WriteByte('[')
		sb.WriteString(key)
		sb.WriteString(" \"")
		sb.WriteString(value)
		sb.WriteString("\"]\n")
	}

	if g.Event != "" {
		writeTag("Event", g.Event)
	}
	if g.Site != "" {
		writeTag("Site", g.Site)
	}
	if g.Date != nil {
		writeTag("Date", g.Date.String())
	}
	if g.Round != nil {
		writeTag("Round", g.Round.String())
	}
	if g.White != "" {
		writeTag("White", g.White)
	}
	if g.Black != "" {
		writeTag("Black", g.Black)
	}
	if g.Outcome != UnknownOutcome {
		writeTag("Result", g.Outcome.String())
	}
	if g.WhiteElo != 0 {
		writeTag("WhiteElo", fmt.Sprintf("%d", g.WhiteElo))
	}
	if g.BlackElo != 0 {
		writeTag("BlackElo", fmt.Sprintf("%d", g.BlackElo))
	}
	if g.ECO != nil {
		writeTag("ECO", g.ECO.String())
	}
	if g.TimeControl != nil {
		writeTag("TimeControl", g.TimeControl.String())
	}
	if g.Setup != "" {
		writeTag("FEN", g.Setup)
	}
	extraKeys := maps.Keys(g.Extra)
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		writeTag(key, g.Extra[key])
	}

	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}
	if g.Root != nil && g.Root.Len() > 0 {
		writeMovetext(&sb, g.Root, startingPly(g.Root.StartingPosition()), true)
	}
	return sb.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (g *Game) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface and
// assumes the data holds exactly one game in PGN.
func (g *Game) UnmarshalText(text []byte) error {
	parsed, err := ReadGame(strings.NewReader(string(text)))
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

// Clone returns a deep copy of the game. Positions and moves are shared
// between the copies; they are never mutated after construction.
func (g *Game) Clone() *Game {
	clone := *g
	clone.Extra = make(map[string]string, len(g.Extra))
	maps.Copy(clone.Extra, g.Extra)
	if g.Date != nil {
		d := *g.Date
		clone.Date = &d
	}
	if g.Round != nil {
		r := Round{Parts: append([]uint64(nil), g.Round.Parts...), Unknown: g.Round.Unknown}
		clone.Round = &r
	}
	if g.ECO != nil {
		e := *g.ECO
		clone.ECO = &e
	}
	if g.TimeControl != nil {
		tc := TimeControl{Fields: append([]TimeControlField(nil), g.TimeControl.Fields...)}
		clone.TimeControl = &tc
	}
	if g.Root != nil {
		clone.Root = g.Root.Clone()
	}
	return &clone
}

// Clone returns a deep copy of the variation tree. Positions and moves
// are shared between the copies; both are immutable after construction.
func (v *Variation) Clone() *Variation {
	clone := &Variation{
		start: v.start,
		turns: make([]*Turn, 0, len(v.turns)),
	}
	for _, t := range v.turns {
		ct := newTurn(t.move, t.position, len(t.variations))
		for _, child := range t.variations {
			ct.variations = append(ct.variations, child.Clone())
		}
		clone.turns = append(clone.turns, ct)
	}
	return clone
}
