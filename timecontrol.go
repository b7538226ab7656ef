package rpgn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeControlKind discriminates the forms a time control field can take.
type TimeControlKind uint8

const (
	// TimeControlUnknown is the "?" field.
	TimeControlUnknown TimeControlKind = iota
	// TimeControlNone is the "-" field: no time control in use.
	TimeControlNone
	// TimeControlMovesPerSeconds is "moves/seconds": "40/9000".
	TimeControlMovesPerSeconds
	// TimeControlSuddenDeath is a plain number of seconds: "300".
	TimeControlSuddenDeath
	// TimeControlIncrement is "seconds+increment": "600+2".
	TimeControlIncrement
	// TimeControlHourglass is "*seconds": "*180".
	TimeControlHourglass
)

// A TimeControlField is one descriptor of a time control tag.
type TimeControlField struct {
	Kind      TimeControlKind
	Moves     uint32
	Seconds   uint32
	Increment uint32
}

// A TimeControl is a PGN time control tag value: one or more fields
// separated by colons, each governing a phase of the game.
type TimeControl struct {
	Fields []TimeControlField
}

var ErrTimeControlEmpty = errors.New("rpgn: empty time control")

// ParseTimeControl parses a time control tag value such as "600+2",
// "40/9000:1800" or "?".
func ParseTimeControl(s string) (TimeControl, error) {
	if s == "" {
		return TimeControl{}, ErrTimeControlEmpty
	}
	words := strings.Split(s, ":")
	fields := make([]TimeControlField, 0, len(words))
	for _, word := range words {
		field, err := parseTimeControlField(word)
		if err != nil {
			return TimeControl{}, err
		}
		fields = append(fields, field)
	}
	return TimeControl{Fields: fields}, nil
}

func parseTimeControlField(s string) (TimeControlField, error) {
	switch {
	case s == "?":
		return TimeControlField{Kind: TimeControlUnknown}, nil
	case s == "-":
		return TimeControlField{Kind: TimeControlNone}, nil
	case strings.HasPrefix(s, "*"):
		seconds, err := parseSeconds(s[1:])
		if err != nil {
			return TimeControlField{}, fmt.Errorf("rpgn: hourglass field %q: %w", s, err)
		}
		return TimeControlField{Kind: TimeControlHourglass, Seconds: seconds}, nil
	case strings.Contains(s, "/"):
		moves, seconds, _ := strings.Cut(s, "/")
		m, err := parseSeconds(moves)
		if err != nil {
			return TimeControlField{}, fmt.Errorf("rpgn: moves in field %q: %w", s, err)
		}
		sec, err := parseSeconds(seconds)
		if err != nil {
			return TimeControlField{}, fmt.Errorf("rpgn: seconds in field %q: %w", s, err)
		}
		return TimeControlField{Kind: TimeControlMovesPerSeconds, Moves: m, Seconds: sec}, nil
	case strings.Contains(s, "+"):
		seconds, increment, _ := strings.Cut(s, "+")
		sec, err := parseSeconds(seconds)
		if err != nil {
			return TimeControlField{}, fmt.Errorf("rpgn: seconds in field %q: %w", s, err)
		}
		inc, err := parseSeconds(increment)
		if err != nil {
			return TimeControlField{}, fmt.Errorf("rpgn: increment in field %q: %w", s, err)
		}
		return TimeControlField{Kind: TimeControlIncrement, Seconds: sec, Increment: inc}, nil
	default:
		sec, err := parseSeconds(s)
		if err != nil {
			return TimeControlField{}, fmt.Errorf("rpgn: time control field %q has no number at all", s)
		}
		return TimeControlField{Kind: TimeControlSuddenDeath, Seconds: sec}, nil
	}
}

func parseSeconds(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

// String formats the time control for a tag value.
func (tc TimeControl) String() string {
	words := make([]string, len(tc.Fields))
	for i, f := range tc.Fields {
		words[i] = f.String()
	}
	return strings.Join(words, ":")
}

// String formats one field.
func (f TimeControlField) String() string {
	switch f.Kind {
	case TimeControlNone:
		return "-"
	case TimeControlMovesPerSeconds:
		return fmt.Sprintf("%d/%d", f.Moves, f.Seconds)
	case TimeControlSuddenDeath:
		return strconv.FormatUint(uint64(f.Seconds), 10)
	case TimeControlIncrement:
		return fmt.Sprintf("%d+%d", f.Seconds, f.Increment)
	case TimeControlHourglass:
		return fmt.Sprintf("*%d", f.Seconds)
	default:
		return "?"
	}
}
