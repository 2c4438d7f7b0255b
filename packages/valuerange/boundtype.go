package valuerange

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// region BoundType ////////////////////////////////////////////////////////////////////////////////////////////////////

// BoundType describes the inclusivity of the two endpoints of a Range. The zero value is BoundTypeClosedOpen, i.e. an
// inclusive lower and an exclusive upper bound, which is the default of every Range.
type BoundType uint8

const (
	// BoundTypeClosedOpen represents an inclusive lower and an exclusive upper bound ("[)").
	BoundTypeClosedOpen BoundType = iota

	// BoundTypeClosed represents two inclusive bounds ("[]").
	BoundTypeClosed

	// BoundTypeOpenClosed represents an exclusive lower and an inclusive upper bound ("(]").
	BoundTypeOpenClosed

	// BoundTypeOpen represents two exclusive bounds ("()").
	BoundTypeOpen
)

// BoundTypeFromBrackets returns the BoundType that corresponds to the given pair of bracket characters.
func BoundTypeFromBrackets(lowerBracket, upperBracket byte) (boundType BoundType, err error) {
	switch {
	case lowerBracket == '[' && upperBracket == ')':
		return BoundTypeClosedOpen, nil
	case lowerBracket == '[' && upperBracket == ']':
		return BoundTypeClosed, nil
	case lowerBracket == '(' && upperBracket == ']':
		return BoundTypeOpenClosed, nil
	case lowerBracket == '(' && upperBracket == ')':
		return BoundTypeOpen, nil
	default:
		return 0, errors.Errorf("invalid bound brackets %q, %q: %w", lowerBracket, upperBracket, ErrParseFailed)
	}
}

// boundTypeFromExclusivity returns the BoundType matching the given per-side exclusivity flags.
func boundTypeFromExclusivity(lowerExclusive, upperExclusive bool) BoundType {
	switch {
	case !lowerExclusive && upperExclusive:
		return BoundTypeClosedOpen
	case !lowerExclusive && !upperExclusive:
		return BoundTypeClosed
	case lowerExclusive && !upperExclusive:
		return BoundTypeOpenClosed
	default:
		return BoundTypeOpen
	}
}

// LowerExclusive returns true if the lower bound is not part of the Range.
func (b BoundType) LowerExclusive() bool {
	return b == BoundTypeOpenClosed || b == BoundTypeOpen
}

// UpperExclusive returns true if the upper bound is not part of the Range.
func (b BoundType) UpperExclusive() bool {
	return b == BoundTypeClosedOpen || b == BoundTypeOpen
}

// LowerBracket returns the bracket character of the lower bound.
func (b BoundType) LowerBracket() byte {
	if b.LowerExclusive() {
		return '('
	}
	return '['
}

// UpperBracket returns the bracket character of the upper bound.
func (b BoundType) UpperBracket() byte {
	if b.UpperExclusive() {
		return ')'
	}
	return ']'
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if b > BoundTypeOpen {
		return "BoundType(" + strconv.Itoa(int(b)) + ")"
	}
	return string([]byte{b.LowerBracket(), b.UpperBracket()})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
