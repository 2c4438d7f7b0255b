// Package domains provides ready-made value domains for the valuerange package: integers, floats with and without a
// configured step width, calendar dates and times of day.
package domains

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/rangekit/rangekit/packages/valuerange"
)

// region numericDomain ////////////////////////////////////////////////////////////////////////////////////////////////

// numericDomain implements the order and arithmetic shared by all numeric domains, with the delta type equal to the
// value type.
type numericDomain[V constraints.Integer | constraints.Float] struct{}

// Compare returns -1 if a is smaller than b, 0 if they are equal and 1 if a is bigger than b.
func (numericDomain[V]) Compare(a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Add returns the value advanced by the given delta.
func (numericDomain[V]) Add(value, delta V) V {
	return value + delta
}

// Sub returns the value moved back by the given delta.
func (numericDomain[V]) Sub(value, delta V) V {
	return value - delta
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region IntDomain ////////////////////////////////////////////////////////////////////////////////////////////////////

// Ints is the discrete domain of 64 bit integers with a delta of 1.
var Ints valuerange.Domain[int64, int64] = IntDomain{}

// IntDomain implements the discrete domain of 64 bit integers.
type IntDomain struct {
	numericDomain[int64]
}

// Delta returns the distance between two adjacent integers.
func (IntDomain) Delta() int64 {
	return 1
}

// Steps returns the number of whole deltas between the two given values.
func (IntDomain) Steps(lower, upper int64) int64 {
	return upper - lower
}

// FormatValue returns the textual token of the given value.
func (IntDomain) FormatValue(value int64) string {
	return strconv.FormatInt(value, 10)
}

// ParseValue converts a textual token back into a value.
func (IntDomain) ParseValue(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

// IntRange creates a new Range of integers between the two given endpoints.
func IntRange(lower, upper int64, optionalBoundType ...valuerange.BoundType) *valuerange.Range[int64, int64] {
	return valuerange.New(Ints, &lower, &upper, optionalBoundType...)
}

// NewIntRange creates a new Range of integers with optionally missing endpoints.
func NewIntRange(lower, upper *int64, optionalBoundType ...valuerange.BoundType) *valuerange.Range[int64, int64] {
	return valuerange.New(Ints, lower, upper, optionalBoundType...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FloatDomain //////////////////////////////////////////////////////////////////////////////////////////////////

// Floats is the continuous domain of 64 bit floating point numbers.
var Floats valuerange.Domain[float64, float64] = FloatDomain{}

// FloatDomain implements the continuous domain of 64 bit floating point numbers.
type FloatDomain struct {
	numericDomain[float64]
}

// FormatValue returns the textual token of the given value.
func (FloatDomain) FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// ParseValue converts a textual token back into a value.
func (FloatDomain) ParseValue(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

// FloatRange creates a new continuous Range of floats between the two given endpoints.
func FloatRange(lower, upper float64, optionalBoundType ...valuerange.BoundType) *valuerange.Range[float64, float64] {
	return valuerange.New(Floats, &lower, &upper, optionalBoundType...)
}

// NewFloatRange creates a new continuous Range of floats with optionally missing endpoints.
func NewFloatRange(lower, upper *float64, optionalBoundType ...valuerange.BoundType) *valuerange.Range[float64, float64] {
	return valuerange.New(Floats, lower, upper, optionalBoundType...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FloatDeltaDomain /////////////////////////////////////////////////////////////////////////////////////////////

// FloatDeltaDomain implements the discrete domain of 64 bit floating point numbers with a configured step width. Since
// float arithmetic is inexact, the domain widens the iteration limit by a tenth of its delta.
type FloatDeltaDomain struct {
	FloatDomain

	delta float64
}

// FloatsWithDelta returns the discrete domain of floats with the given step width. Non-positive deltas fall back to 1.
func FloatsWithDelta(delta float64) valuerange.Domain[float64, float64] {
	if delta <= 0 {
		delta = 1
	}

	return FloatDeltaDomain{delta: delta}
}

// Delta returns the configured step width.
func (f FloatDeltaDomain) Delta() float64 {
	return f.delta
}

// Steps returns the number of whole deltas between the two given values.
func (f FloatDeltaDomain) Steps(lower, upper float64) int64 {
	return int64(math.Floor((upper - lower) / f.delta))
}

// IterationSlack returns the tolerance added to the iteration limit.
func (f FloatDeltaDomain) IterationSlack() float64 {
	return f.delta / 10
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
