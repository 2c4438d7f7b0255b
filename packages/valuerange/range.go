package valuerange

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// region Range ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Range represents an interval of values from an ordered Domain. Either endpoint may be nil, which makes the Range
// unbounded on that side. A Range is discrete if its Domain defines a delta (see DeltaDomain) and continuous otherwise;
// most binary operations require both operands to be of the same kind.
type Range[V, D any] struct {
	domain    Domain[V, D]
	lower     *V
	upper     *V
	boundType BoundType
}

// New creates a new Range over the given Domain. The endpoint values are copied, nil endpoints keep the Range
// unbounded on that side. The BoundType is optional and defaults to BoundTypeClosedOpen.
func New[V, D any](domain Domain[V, D], lower, upper *V, optionalBoundType ...BoundType) *Range[V, D] {
	r := &Range[V, D]{
		domain: domain,
	}
	if lower != nil {
		lowerValue := *lower
		r.lower = &lowerValue
	}
	if upper != nil {
		upperValue := *upper
		r.upper = &upperValue
	}
	if len(optionalBoundType) >= 1 {
		r.boundType = optionalBoundType[0]
	}

	return r
}

// Value is a utility function that returns a pointer to a copy of the given value. It allows for the inline
// construction of bounded Ranges.
func Value[V any](value V) *V {
	return &value
}

// Domain returns the Domain that the values of the Range belong to.
func (r *Range[V, D]) Domain() Domain[V, D] {
	return r.domain
}

// BoundType returns the BoundType of the Range.
func (r *Range[V, D]) BoundType() BoundType {
	return r.boundType
}

// Lower returns the raw lower endpoint of the Range. The second return value is false if the Range has no lower
// endpoint.
func (r *Range[V, D]) Lower() (value V, exists bool) {
	return r.LowerBound().Raw()
}

// Upper returns the raw upper endpoint of the Range. The second return value is false if the Range has no upper
// endpoint.
func (r *Range[V, D]) Upper() (value V, exists bool) {
	return r.UpperBound().Raw()
}

// LowerBound returns the resolved lower Bound of the Range.
func (r *Range[V, D]) LowerBound() *Bound[V, D] {
	return &Bound[V, D]{r: r, side: BoundSideLower}
}

// UpperBound returns the resolved upper Bound of the Range.
func (r *Range[V, D]) UpperBound() *Bound[V, D] {
	return &Bound[V, D]{r: r, side: BoundSideUpper}
}

// Discrete returns true if the Domain of the Range defines a delta between consecutive values.
func (r *Range[V, D]) Discrete() bool {
	return r.discrete()
}

// IsEmpty returns true if the Range contains no values. Ranges that are unbounded on either side are never empty.
func (r *Range[V, D]) IsEmpty() bool {
	lowerFirst, lowerExists := r.LowerBound().First()
	upperFirst, upperExists := r.UpperBound().First()
	if !lowerExists || !upperExists {
		return false
	}

	cmp := r.domain.Compare(lowerFirst, upperFirst)
	if !r.discrete() && (r.boundType.LowerExclusive() || r.boundType.UpperExclusive()) {
		return cmp >= 0
	}

	return cmp > 0
}

// Contains returns true if the given value lies inside the Range.
func (r *Range[V, D]) Contains(value V) bool {
	return r.LowerBound().Contains(value) && r.UpperBound().Contains(value)
}

// ContainsRange returns true if every value of other also lies inside the Range. An empty other is never contained. It
// returns an error if the Ranges are not of the same kind.
func (r *Range[V, D]) ContainsRange(other *Range[V, D]) (contains bool, err error) {
	if err = r.checkKind(other); err != nil {
		return false, err
	}
	if other.IsEmpty() {
		return false, nil
	}

	lower, upper := r.LowerBound(), r.UpperBound()
	otherLower, otherUpper := other.LowerBound(), other.UpperBound()

	if r.discrete() {
		otherLowerFirst, otherLowerExists := otherLower.First()
		otherUpperFirst, otherUpperExists := otherUpper.First()

		return lower.containsOptional(otherLowerFirst, otherLowerExists) &&
			lower.containsOptional(otherUpperFirst, otherUpperExists) &&
			upper.containsOptional(otherLowerFirst, otherLowerExists) &&
			upper.containsOptional(otherUpperFirst, otherUpperExists), nil
	}

	otherLowerRaw, otherLowerExists := otherLower.Raw()
	otherUpperRaw, otherUpperExists := otherUpper.Raw()

	return (compareCmpValues(lower, otherLower) == 0 || lower.containsOptional(otherLowerRaw, otherLowerExists)) &&
		(compareCmpValues(upper, otherUpper) == 0 || upper.containsOptional(otherUpperRaw, otherUpperExists)) &&
		lower.containsOptional(otherUpperRaw, otherUpperExists) &&
		upper.containsOptional(otherLowerRaw, otherLowerExists), nil
}

// Equal returns true if both Ranges contain exactly the same values. Ranges of different kinds are never equal.
// Discrete Ranges are compared by the values they actually contain, so differently written notations of the same set
// of values are equal.
func (r *Range[V, D]) Equal(other *Range[V, D]) bool {
	if r.discrete() != other.discrete() {
		return false
	}

	return compareCmpValues(r.LowerBound(), other.LowerBound()) == 0 &&
		compareCmpValues(r.UpperBound(), other.UpperBound()) == 0
}

// Less returns true if the Range sorts strictly before other. It returns an error if the Ranges are not of the same
// kind.
func (r *Range[V, D]) Less(other *Range[V, D]) (less bool, err error) {
	lowerCmp, upperCmp, err := r.compareBounds(other)
	if err != nil {
		return false, err
	}
	if r.discrete() {
		return lowerCmp < 0 || (lowerCmp == 0 && upperCmp < 0), nil
	}

	return (lowerCmp <= 0 && upperCmp < 0) || (lowerCmp < 0 && upperCmp <= 0), nil
}

// LessOrEqual returns true if the Range sorts before or equal to other. It returns an error if the Ranges are not of
// the same kind.
func (r *Range[V, D]) LessOrEqual(other *Range[V, D]) (lessOrEqual bool, err error) {
	lowerCmp, upperCmp, err := r.compareBounds(other)
	if err != nil {
		return false, err
	}
	if r.discrete() {
		return lowerCmp < 0 || (lowerCmp == 0 && upperCmp <= 0), nil
	}

	return lowerCmp <= 0 && upperCmp <= 0, nil
}

// Greater returns true if the Range sorts strictly after other. It returns an error if the Ranges are not of the same
// kind.
func (r *Range[V, D]) Greater(other *Range[V, D]) (greater bool, err error) {
	lowerCmp, upperCmp, err := r.compareBounds(other)
	if err != nil {
		return false, err
	}
	if r.discrete() {
		return lowerCmp > 0 || (lowerCmp == 0 && upperCmp > 0), nil
	}

	return (lowerCmp >= 0 && upperCmp > 0) || (lowerCmp > 0 && upperCmp >= 0), nil
}

// GreaterOrEqual returns true if the Range sorts after or equal to other. It returns an error if the Ranges are not of
// the same kind.
func (r *Range[V, D]) GreaterOrEqual(other *Range[V, D]) (greaterOrEqual bool, err error) {
	lowerCmp, upperCmp, err := r.compareBounds(other)
	if err != nil {
		return false, err
	}
	if r.discrete() {
		return lowerCmp > 0 || (lowerCmp == 0 && upperCmp >= 0), nil
	}

	return lowerCmp >= 0 && upperCmp >= 0, nil
}

// Overlaps returns true if both Ranges are non-empty and share at least one value. It returns an error if the Ranges
// are not of the same kind.
func (r *Range[V, D]) Overlaps(other *Range[V, D]) (overlaps bool, err error) {
	if err = r.checkKind(other); err != nil {
		return false, err
	}
	if r.IsEmpty() || other.IsEmpty() {
		return false, nil
	}

	return r.overlapsSorted(sortedBounds(r, other)), nil
}

// IsAdjacent returns true if the Ranges share no value but no value of the Domain fits between them. It returns an
// error if the Ranges are not of the same kind.
func (r *Range[V, D]) IsAdjacent(other *Range[V, D]) (isAdjacent bool, err error) {
	if err = r.checkKind(other); err != nil {
		return false, err
	}
	if r.IsEmpty() || other.IsEmpty() {
		return false, nil
	}

	l, o := r, other
	if lessOrEqual, _ := l.LessOrEqual(o); !lessOrEqual {
		l, o = o, l
	}

	lowerUpper, otherLower := l.UpperBound(), o.LowerBound()
	deltaDomain, discrete := r.deltaDomain()
	if !discrete {
		return (lowerUpper.Exclusive() || otherLower.Exclusive()) && compareValues(lowerUpper, otherLower) == 0, nil
	}

	upperFirst, upperExists := lowerUpper.First()
	lowerFirst, lowerExists := otherLower.First()
	if !upperExists || !lowerExists {
		return false, nil
	}

	return r.domain.Compare(deltaDomain.Add(upperFirst, deltaDomain.Delta()), lowerFirst) == 0, nil
}

// After returns true if every value of the Range lies after every value of other. It returns an error if the Ranges
// are not of the same kind.
func (r *Range[V, D]) After(other *Range[V, D]) (after bool, err error) {
	if err = r.checkKind(other); err != nil {
		return false, err
	}
	if r.IsEmpty() || other.IsEmpty() {
		return false, nil
	}

	lower, otherUpper := r.LowerBound(), other.UpperBound()
	cmp := compareCmpValues(lower, otherUpper)
	if !r.discrete() && lower.Exclusive() && otherUpper.Exclusive() {
		return cmp >= 0, nil
	}

	return cmp > 0, nil
}

// Before returns true if every value of the Range lies before every value of other. It returns an error if the Ranges
// are not of the same kind.
func (r *Range[V, D]) Before(other *Range[V, D]) (before bool, err error) {
	if err = r.checkKind(other); err != nil {
		return false, err
	}
	if r.IsEmpty() || other.IsEmpty() {
		return false, nil
	}

	upper, otherLower := r.UpperBound(), other.LowerBound()
	cmp := compareCmpValues(upper, otherLower)
	if !r.discrete() && upper.Exclusive() && otherLower.Exclusive() {
		return cmp <= 0, nil
	}

	return cmp < 0, nil
}

// Intersect returns the Range of values that are contained in both Ranges. If the Ranges do not overlap, the result is
// an empty open Range between the two inner bound values, which keeps the gap between the operands visible. It returns
// an error if the Ranges are not of the same kind.
func (r *Range[V, D]) Intersect(other *Range[V, D]) (intersection *Range[V, D], err error) {
	if err = r.checkKind(other); err != nil {
		return nil, err
	}

	bounds := sortedBounds(r, other)
	if r.IsEmpty() || other.IsEmpty() || !r.overlapsSorted(bounds) {
		return New(r.domain, optionalValue(bounds[1].Value()), optionalValue(bounds[2].Value()), BoundTypeOpen), nil
	}

	return New(r.domain, optionalValue(bounds[1].First()), optionalValue(bounds[2].First()), BoundTypeClosed), nil
}

// Union returns the Range of values that are contained in either Range, provided that the Ranges overlap. If they do
// not, the result is an empty open Range between the two inner bound values. It returns an error if the Ranges are not
// of the same kind.
func (r *Range[V, D]) Union(other *Range[V, D]) (union *Range[V, D], err error) {
	if err = r.checkKind(other); err != nil {
		return nil, err
	}

	bounds := sortedBounds(r, other)
	if r.IsEmpty() || other.IsEmpty() || !r.overlapsSorted(bounds) {
		return New(r.domain, optionalValue(bounds[1].Value()), optionalValue(bounds[2].Value()), BoundTypeOpen), nil
	}

	boundType := boundTypeFromExclusivity(bounds[0].Exclusive(), bounds[3].Exclusive())

	return New(r.domain, optionalValue(bounds[0].Value()), optionalValue(bounds[3].Value()), boundType), nil
}

// Shift returns a copy of the Range with both endpoints moved forward by the given offset. Unbounded sides stay
// unbounded.
func (r *Range[V, D]) Shift(offset D) *Range[V, D] {
	shifted := &Range[V, D]{domain: r.domain, boundType: r.boundType}
	if r.lower != nil {
		shifted.lower = Value(r.domain.Add(*r.lower, offset))
	}
	if r.upper != nil {
		shifted.upper = Value(r.domain.Add(*r.upper, offset))
	}

	return shifted
}

// ShiftBack returns a copy of the Range with both endpoints moved backward by the given offset. Unbounded sides stay
// unbounded.
func (r *Range[V, D]) ShiftBack(offset D) *Range[V, D] {
	shifted := &Range[V, D]{domain: r.domain, boundType: r.boundType}
	if r.lower != nil {
		shifted.lower = Value(r.domain.Sub(*r.lower, offset))
	}
	if r.upper != nil {
		shifted.upper = Value(r.domain.Sub(*r.upper, offset))
	}

	return shifted
}

// discrete returns true if the Domain of the Range defines a delta.
func (r *Range[V, D]) discrete() bool {
	_, isDeltaDomain := r.domain.(DeltaDomain[V, D])

	return isDeltaDomain
}

// deltaDomain returns the Domain of the Range as a DeltaDomain if it defines one.
func (r *Range[V, D]) deltaDomain() (deltaDomain DeltaDomain[V, D], isDeltaDomain bool) {
	deltaDomain, isDeltaDomain = r.domain.(DeltaDomain[V, D])

	return
}

// checkKind returns an error if the two Ranges are not of the same kind.
func (r *Range[V, D]) checkKind(other *Range[V, D]) (err error) {
	if r.discrete() != other.discrete() {
		return errors.Errorf("cannot combine %s and %s: %w", r, other, ErrKindMismatch)
	}

	return nil
}

// compareBounds compares the lower and upper Bounds of two Ranges of the same kind.
func (r *Range[V, D]) compareBounds(other *Range[V, D]) (lowerCmp, upperCmp int, err error) {
	if err = r.checkKind(other); err != nil {
		return 0, 0, err
	}

	return compareCmpValues(r.LowerBound(), other.LowerBound()), compareCmpValues(r.UpperBound(), other.UpperBound()), nil
}

// overlapsSorted determines whether two non-empty Ranges overlap, given their merged and sorted Bounds: they do if the
// two smallest Bounds belong to different Ranges, i.e. one Range starts before the other ends.
func (r *Range[V, D]) overlapsSorted(bounds []mergedBound[V, D]) bool {
	if r.discrete() {
		return bounds[0].owner != bounds[1].owner || compareCmpValues(bounds[1].Bound, bounds[2].Bound) == 0
	}

	if bounds[0].owner != bounds[1].owner {
		if bounds[1].Exclusive() {
			return compareValues(bounds[1].Bound, bounds[2].Bound) < 0
		}

		return true
	}

	return !bounds[1].Exclusive() && !bounds[2].Exclusive() && compareCmpValues(bounds[1].Bound, bounds[2].Bound) == 0
}

// optionalValue turns the (value, exists) form of an optional value back into its pointer form.
func optionalValue[V any](value V, exists bool) *V {
	if !exists {
		return nil
	}

	return &value
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region mergedBound //////////////////////////////////////////////////////////////////////////////////////////////////

// mergedBound is a Bound annotated with the Range it came from, used when interleaving the Bounds of two Ranges.
type mergedBound[V, D any] struct {
	*Bound[V, D]

	owner *Range[V, D]
}

// sortedBounds merges the four Bounds of two Ranges into ascending order. The seed order lists upper Bounds before
// lower Bounds of the Range that starts first, so that the stable sort resolves ties between an upper and a lower
// Bound in favor of the upper one.
func sortedBounds[V, D any](a, b *Range[V, D]) (bounds []mergedBound[V, D]) {
	l, r := a, b
	if compareSortKeys(l.LowerBound(), r.LowerBound()) > 0 {
		l, r = r, l
	}

	bounds = []mergedBound[V, D]{
		{l.UpperBound(), l},
		{r.UpperBound(), r},
		{l.LowerBound(), l},
		{r.LowerBound(), r},
	}
	sort.SliceStable(bounds, func(i, j int) bool {
		return compareSortKeys(bounds[i].Bound, bounds[j].Bound) < 0
	})

	return bounds
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
