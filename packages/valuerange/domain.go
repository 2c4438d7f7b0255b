package valuerange

// Domain supplies the element-type specific operations of a Range: a total order, arithmetic against a delta type and
// the textual codec for single values. Implementations are expected to be immutable and safe for concurrent use.
type Domain[V, D any] interface {
	// Compare returns -1 if a is smaller than b, 0 if they are equal and 1 if a is bigger than b.
	Compare(a, b V) int

	// Add returns the value advanced by the given delta.
	Add(value V, delta D) V

	// Sub returns the value moved back by the given delta.
	Sub(value V, delta D) V

	// FormatValue returns the textual token of the given value (used by the range notation).
	FormatValue(value V) string

	// ParseValue converts a textual token back into a value.
	ParseValue(token string) (V, error)
}

// DeltaDomain is implemented by discrete Domains that have a well-defined distance between adjacent values. Its
// presence decides the kind of every Range built on top of the Domain: Ranges over a DeltaDomain are discrete, all
// others are continuous.
type DeltaDomain[V, D any] interface {
	Domain[V, D]

	// Delta returns the distance between two adjacent values of the Domain.
	Delta() D

	// Steps returns the number of whole deltas between the two given values.
	Steps(lower, upper V) int64
}

// FiniteDomain is implemented by Domains that define finite extremes which substitute unbounded sides when a Bound is
// derived (e.g. the minimum and maximum representable date of a calendar domain).
type FiniteDomain[V any] interface {
	// FiniteLower returns the smallest value of the Domain if it defines one.
	FiniteLower() (V, bool)

	// FiniteUpper returns the largest value of the Domain if it defines one.
	FiniteUpper() (V, bool)
}

// SlackDomain is implemented by discrete Domains whose arithmetic is inexact (e.g. floating point values with a
// fractional delta). The returned slack widens the iteration limit so that accumulated rounding errors do not swallow
// the last value.
type SlackDomain[D any] interface {
	// IterationSlack returns the tolerance added to the iteration limit.
	IterationSlack() D
}
