package rpgn

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		in   string
		want Outcome
	}{
		{"1-0", WhiteWon},
		{"0-1", BlackWon},
		{"1/2-1/2", Draw},
		{"*", NoOutcome},
	}
	for _, tt := range tests {
		got, err := ParseOutcome(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
	_, err := ParseOutcome("2-0")
	require.Error(t, err)
}

func TestGameStringHeaderOrder(t *testing.T) {
	g, err := ReadGame(strings.NewReader(sampleNested))
	require.NoError(t, err)

	g.Extra["Termination"] = "Normal"
	g.Extra["Annotator"] = "tigerros0"

	lines := strings.Split(g.String(), "\n")
	wantPrefixes := []string{
		"[Event ", "[Site ", "[Date ", "[Round ", "[White ", "[Black ",
		"[Result ", "[WhiteElo ", "[BlackElo ", "[ECO ", "[TimeControl ",
		// extra tags sorted by key
		"[Annotator ", "[Termination ",
		"",
		"1. e4",
	}
	require.GreaterOrEqual(t, len(lines), len(wantPrefixes))
	for i, prefix := range wantPrefixes {
		if prefix == "" {
			require.Equal(t, "", lines[i], "line %d", i)
			continue
		}
		require.True(t, strings.HasPrefix(lines[i], prefix),
			"line %d = %q, want prefix %q", i, lines[i], prefix)
	}
}

func TestGameMarshalUnmarshalText(t *testing.T) {
	var g Game
	require.NoError(t, g.UnmarshalText([]byte(sampleMainline)))
	require.Equal(t, "Live Chess", g.Event)

	text, err := g.MarshalText()
	require.NoError(t, err)
	require.Equal(t, sampleMainline, string(text))
}

func TestGameUnmarshalTextError(t *testing.T) {
	var g Game
	err := g.UnmarshalText([]byte(""))
	require.ErrorIs(t, err, ErrNoGame)

	var nerr *NotationError
	err = g.UnmarshalText([]byte("1. banana"))
	require.ErrorAs(t, err, &nerr)
}

func TestSevenTagRoster(t *testing.T) {
	g, err := ReadGame(strings.NewReader(sampleNested))
	require.NoError(t, err)
	require.NoError(t, g.SevenTagRoster())

	g.Round = nil
	err = g.SevenTagRoster()
	require.ErrorIs(t, err, ErrMissingRosterTag)
	require.Contains(t, err.Error(), "Round")

	empty := NewGame()
	require.ErrorIs(t, empty.SevenTagRoster(), ErrMissingRosterTag)
}

func TestGameClone(t *testing.T) {
	g, err := ReadGame(strings.NewReader(sampleNested))
	require.NoError(t, err)

	clone := g.Clone()
	require.Equal(t, g.String(), clone.String())

	// mutating the clone leaves the original alone
	clone.Event = "changed"
	clone.Extra["X"] = "y"
	clone.Root.Pop()
	require.Equal(t, "Let's Play!", g.Event)
	require.NotContains(t, g.Extra, "X")
	require.Equal(t, 7, g.Root.Len())
}

func TestNewGameEmpty(t *testing.T) {
	g := NewGame()
	require.Equal(t, "", g.String())
	require.Equal(t, 0, g.Root.Len())
}

func TestGameMainlineProjection(t *testing.T) {
	g, err := ReadGame(strings.NewReader(sampleNested))
	require.NoError(t, err)

	line := g.Root.MainlineNotations()
	require.Equal(t, NotationLine{"e4", "e5", "Nf3", "Nc6", "Bc4", "Nf6", "Nc3"}, line)
}

func TestNotationErrorMessage(t *testing.T) {
	err := &NotationError{Text: "Qh5", Reason: NotationIllegal, Ply: 26}
	require.Equal(t, `rpgn: illegal notation "Qh5" at white's move 14`, err.Error())

	err = &NotationError{Text: "h4", Reason: NotationMalformed, Ply: 1}
	require.Equal(t, `rpgn: malformed notation "h4" at black's move 1`, err.Error())
}

func TestGameOutcomeString(t *testing.T) {
	var sink strings.Builder
	for _, o := range []Outcome{WhiteWon, BlackWon, Draw, NoOutcome} {
		sink.WriteString(o.String())
	}
	require.Equal(t, "1-00-11/2-1/2*", sink.String())
}

func TestGameErrorsUnwrap(t *testing.T) {
	_, err := ReadGame(strings.NewReader("1. e4 1... e4"))
	var nerr *NotationError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected a NotationError, got %v", err)
	}
	if nerr.Reason != NotationIllegal || nerr.Ply != 1 {
		t.Fatalf("unexpected error detail %+v", nerr)
	}
}
