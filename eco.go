package rpgn

import (
	"errors"
	"fmt"
)

// An ECO is the Encyclopaedia of Chess Openings code of an opening, a
// category letter A through E followed by a two-digit subcategory:
// "C50", "A00".
type ECO struct {
	Category    byte // 'A' through 'E'
	Subcategory uint8
}

var (
	ErrECOCategory    = errors.New("rpgn: ECO category is not A-E")
	ErrECOSubcategory = errors.New("rpgn: ECO subcategory greater than 99")
)

// NewECO validates and builds an ECO code. A lowercase category letter is
// accepted and normalized.
func NewECO(category byte, subcategory uint8) (ECO, error) {
	if category >= 'a' && category <= 'e' {
		category -= 'a' - 'A'
	}
	if category < 'A' || category > 'E' {
		return ECO{}, ErrECOCategory
	}
	if subcategory > 99 {
		return ECO{}, ErrECOSubcategory
	}
	return ECO{Category: category, Subcategory: subcategory}, nil
}

// ParseECO parses an ECO tag value. Both "C5" and "C50" forms are
// accepted; formatting always zero-pads.
func ParseECO(s string) (ECO, error) {
	if len(s) != 2 && len(s) != 3 {
		return ECO{}, fmt.Errorf("rpgn: ECO %q is not 2 or 3 characters", s)
	}
	var sub uint8
	for _, c := range []byte(s[1:]) {
		if c < '0' || c > '9' {
			return ECO{}, fmt.Errorf("rpgn: ECO subcategory in %q is not a number", s)
		}
		sub = sub*10 + (c - '0')
	}
	return NewECO(s[0], sub)
}

// String formats the code for a tag value.
func (e ECO) String() string {
	return fmt.Sprintf("%c%02d", e.Category, e.Subcategory)
}
