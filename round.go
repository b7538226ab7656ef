package rpgn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Round is a PGN round tag value: a plain number ("7"), a multipart
// round ("3.1.2") or unknown ("?").
type Round struct {
	// Parts holds the round numbers; one element for a plain round,
	// several for a multipart round, none when the round is unknown.
	Parts []uint64
	// Unknown is true for the "?" value, which is a successful value,
	// not a parse failure.
	Unknown bool
}

var (
	ErrRoundLeadingDot  = errors.New("rpgn: dot at the start of a round")
	ErrRoundTrailingDot = errors.New("rpgn: dot at the end of a round")
)

// UnknownRound is the "?" round value.
func UnknownRound() Round {
	return Round{Unknown: true}
}

// ParseRound parses a round tag value.
func ParseRound(s string) (Round, error) {
	if s == "?" {
		return UnknownRound(), nil
	}
	if strings.Contains(s, ".") {
		if strings.HasPrefix(s, ".") {
			return Round{}, ErrRoundLeadingDot
		}
		if strings.HasSuffix(s, ".") {
			return Round{}, ErrRoundTrailingDot
		}
		words := strings.Split(s, ".")
		parts := make([]uint64, 0, len(words))
		index := 0
		for _, word := range words {
			n, err := strconv.ParseUint(word, 10, 64)
			if err != nil {
				return Round{}, fmt.Errorf("rpgn: invalid multipart round at index %d of %q", index, s)
			}
			parts = append(parts, n)
			index += len(word) + 1
		}
		return Round{Parts: parts}, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Round{}, fmt.Errorf("rpgn: round %q is not a number or a question mark", s)
	}
	return Round{Parts: []uint64{n}}, nil
}

// String formats the round for a tag value.
func (r Round) String() string {
	if r.Unknown || len(r.Parts) == 0 {
		return "?"
	}
	words := make([]string, len(r.Parts))
	for i, n := range r.Parts {
		words[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(words, ".")
}
