// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// ChoiceKind tells which of the three ballot paths a Choice takes.
// The zero kind is not a ballot, so an unset Choice is rejected.
type ChoiceKind int

const (
	ChoiceCandidate ChoiceKind = iota + 1
	ChoiceBlank
	ChoiceNull
)

// NullIndex is the candidate index that marks a spoiled ballot
const NullIndex = -1

// Choice is what a voter puts on a ballot
type Choice struct {
	Kind  ChoiceKind
	Index int // candidate position, only meaningful for ChoiceCandidate
}

func Blank() Choice { return Choice{Kind: ChoiceBlank} }

func Null() Choice { return Choice{Kind: ChoiceNull} }

func ForCandidate(index int) Choice {
	return Choice{Kind: ChoiceCandidate, Index: index}
}

// IndexChoice maps the optional-index encoding onto a Choice:
// nil is blank, NullIndex is null, anything else selects a candidate.
func IndexChoice(index *int) Choice {
	switch {
	case index == nil:
		return Blank()
	case *index == NullIndex:
		return Null()
	default:
		return ForCandidate(*index)
	}
}

func (c Choice) String() string {
	switch c.Kind {
	case ChoiceBlank:
		return "blank"
	case ChoiceNull:
		return "null"
	case ChoiceCandidate:
		return fmt.Sprintf("candidate #%d", c.Index)
	default:
		return fmt.Sprintf("unknown choice %d", int(c.Kind))
	}
}
