package valuerange

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// region Length ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Length expresses how many values a discrete Range contains. Ranges that are unbounded on either side have
// LengthInfinite as their Length.
type Length int64

// LengthInfinite is the Length of a Range that is unbounded on at least one side.
const LengthInfinite Length = -1

// Finite returns true if the Length counts an actual number of values.
func (l Length) Finite() bool {
	return l != LengthInfinite
}

// String returns a human-readable version of the Length.
func (l Length) String() string {
	if !l.Finite() {
		return "infinite"
	}

	return strconv.FormatInt(int64(l), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Range iteration //////////////////////////////////////////////////////////////////////////////////////////////

// Length returns the number of values contained in the Range. It returns an error if the Domain of the Range does not
// define a delta.
func (r *Range[V, D]) Length() (length Length, err error) {
	deltaDomain, isDeltaDomain := r.deltaDomain()
	if !isDeltaDomain {
		return 0, errors.Errorf("cannot determine length of %s: %w", r, ErrUnsupportedOperation)
	}

	lowerFirst, lowerExists := r.LowerBound().First()
	upperFirst, upperExists := r.UpperBound().First()
	if !lowerExists || !upperExists {
		return LengthInfinite, nil
	}
	if r.IsEmpty() {
		return 0, nil
	}

	return Length(deltaDomain.Steps(lowerFirst, upperFirst)) + 1, nil
}

// ForEach calls the consumer for every value contained in the Range, in ascending order, until the consumer returns
// false. It returns an error if the Domain of the Range does not define a delta or if the Range is unbounded on either
// side.
func (r *Range[V, D]) ForEach(consumer func(value V) bool) (err error) {
	deltaDomain, isDeltaDomain := r.deltaDomain()
	if !isDeltaDomain {
		return errors.Errorf("cannot iterate over %s: %w", r, ErrUnsupportedOperation)
	}

	lowerFirst, lowerExists := r.LowerBound().First()
	last, upperExists := r.UpperBound().First()
	if !lowerExists || !upperExists {
		return errors.Errorf("cannot iterate over %s: %w", r, ErrUnboundedIteration)
	}

	if slackDomain, hasSlack := r.domain.(SlackDomain[D]); hasSlack {
		last = deltaDomain.Add(last, slackDomain.IterationSlack())
	}

	for current := lowerFirst; r.domain.Compare(current, last) <= 0; current = deltaDomain.Add(current, deltaDomain.Delta()) {
		if !consumer(current) {
			return nil
		}
	}

	return nil
}

// Values returns all values contained in the Range, in ascending order. It returns an error if the Domain of the Range
// does not define a delta or if the Range is unbounded on either side.
func (r *Range[V, D]) Values() (values []V, err error) {
	err = r.ForEach(func(value V) bool {
		values = append(values, value)

		return true
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
