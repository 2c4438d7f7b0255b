package valuerange

// region BoundSide ////////////////////////////////////////////////////////////////////////////////////////////////////

// BoundSide identifies which endpoint of a Range a Bound belongs to.
type BoundSide uint8

const (
	// BoundSideLower identifies the lower endpoint of a Range.
	BoundSideLower BoundSide = iota

	// BoundSideUpper identifies the upper endpoint of a Range.
	BoundSideUpper
)

// String returns a human-readable version of the BoundSide.
func (b BoundSide) String() string {
	if b == BoundSideLower {
		return "BoundSideLower"
	}
	return "BoundSideUpper"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Bound ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Bound is the resolved view of one endpoint of a Range. It combines the raw endpoint value with the Domain's
// configuration (finite extremes, delta) and answers all endpoint-local questions like containment of a value. Bounds
// are derived on demand and never stored by their Range.
type Bound[V, D any] struct {
	r    *Range[V, D]
	side BoundSide
}

// Side returns which endpoint of the Range this Bound represents.
func (b *Bound[V, D]) Side() BoundSide {
	return b.side
}

// Exclusive returns true if the bound value is not part of the Range.
func (b *Bound[V, D]) Exclusive() bool {
	if b.side == BoundSideLower {
		return b.r.boundType.LowerExclusive()
	}
	return b.r.boundType.UpperExclusive()
}

// Raw returns the endpoint value as stored by the Range. The second return value is false if the side is unbounded.
func (b *Bound[V, D]) Raw() (value V, exists bool) {
	if raw := b.raw(); raw != nil {
		return *raw, true
	}
	return
}

// Value returns the effective bound value: the raw endpoint if present, otherwise the Domain's finite extreme for this
// side. The second return value is false if neither exists, i.e. the side is truly infinite.
func (b *Bound[V, D]) Value() (value V, exists bool) {
	if raw := b.raw(); raw != nil {
		return *raw, true
	}
	if finiteDomain, ok := b.r.domain.(FiniteDomain[V]); ok {
		if b.side == BoundSideLower {
			return finiteDomain.FiniteLower()
		}
		return finiteDomain.FiniteUpper()
	}
	return
}

// First returns the first value that is actually contained by this side of the Range: the bound value itself for
// inclusive bounds, the bound value stepped inward by one delta for exclusive bounds on discrete Domains. Exclusive
// bounds on continuous Domains have no defined neighbor and return the bound value unchanged.
func (b *Bound[V, D]) First() (value V, exists bool) {
	if value, exists = b.Value(); !exists || !b.Exclusive() {
		return
	}
	deltaDomain, ok := b.r.domain.(DeltaDomain[V, D])
	if !ok {
		return
	}
	if b.side == BoundSideLower {
		return deltaDomain.Add(value, deltaDomain.Delta()), true
	}
	return deltaDomain.Sub(value, deltaDomain.Delta()), true
}

// Contains returns true if the given value lies inside the Range as far as this side is concerned. An infinite side
// contains every value.
func (b *Bound[V, D]) Contains(value V) bool {
	return b.containsOptional(value, true)
}

// String returns a human-readable version of the Bound (bracket character plus bound token).
func (b *Bound[V, D]) String() string {
	token := "None"
	if value, exists := b.Value(); exists {
		token = b.r.domain.FormatValue(value)
	}
	if b.side == BoundSideLower {
		return string(b.r.boundType.LowerBracket()) + token
	}
	return token + string(b.r.boundType.UpperBracket())
}

// containsOptional implements Contains for possibly missing values: a missing value is only contained by an infinite
// side.
func (b *Bound[V, D]) containsOptional(value V, exists bool) bool {
	boundValue, boundExists := b.Value()
	if !boundExists {
		return true
	}
	if !exists {
		return false
	}
	cmp := b.r.domain.Compare(boundValue, value)
	if b.side == BoundSideLower {
		if b.Exclusive() {
			return cmp < 0
		}
		return cmp <= 0
	}
	if b.Exclusive() {
		return cmp > 0
	}
	return cmp >= 0
}

// raw returns the pointer to the endpoint value of the owning Range.
func (b *Bound[V, D]) raw() *V {
	if b.side == BoundSideLower {
		return b.r.lower
	}
	return b.r.upper
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region bound comparisons ////////////////////////////////////////////////////////////////////////////////////////////

// compareOptional compares two possibly missing values, treating a missing value as the infinity of its side (negative
// infinity for lower bounds, positive infinity for upper bounds).
func compareOptional[V, D any](domain Domain[V, D], a V, aExists bool, aSide BoundSide, b V, bExists bool, bSide BoundSide) int {
	if aExists && bExists {
		return domain.Compare(a, b)
	}
	infinity := func(side BoundSide) int {
		if side == BoundSideLower {
			return -1
		}
		return 1
	}
	switch {
	case !aExists && !bExists:
		return compareInts(infinity(aSide), infinity(bSide))
	case !aExists:
		return infinity(aSide)
	default:
		return -infinity(bSide)
	}
}

// compareFirst compares the first contained values of two Bounds.
func compareFirst[V, D any](a, b *Bound[V, D]) int {
	aValue, aExists := a.First()
	bValue, bExists := b.First()

	return compareOptional(a.r.domain, aValue, aExists, a.side, bValue, bExists, b.side)
}

// compareValues compares the effective bound values of two Bounds.
func compareValues[V, D any](a, b *Bound[V, D]) int {
	aValue, aExists := a.Value()
	bValue, bExists := b.Value()

	return compareOptional(a.r.domain, aValue, aExists, a.side, bValue, bExists, b.side)
}

// compareCmpValues compares two Bounds by the value that decides equality and ordering of Ranges: the first contained
// value alone for discrete Ranges (exclusivity is already folded in) and the pair of first contained value and
// inclusivity for continuous Ranges, so that on a tie an inclusive bound sorts as the wider side. Both Bounds must
// belong to Ranges of the same kind.
func compareCmpValues[V, D any](a, b *Bound[V, D]) int {
	if cmp := compareFirst(a, b); a.r.discrete() || cmp != 0 {
		return cmp
	}
	return compareBools(!a.Exclusive(), !b.Exclusive())
}

// compareSortKeys compares two Bounds by the key used when merging the bounds of two Ranges into ascending order:
// first contained value, then inclusivity, then effective bound value.
func compareSortKeys[V, D any](a, b *Bound[V, D]) int {
	if cmp := compareFirst(a, b); cmp != 0 {
		return cmp
	}
	if cmp := compareBools(!a.Exclusive(), !b.Exclusive()); cmp != 0 {
		return cmp
	}
	return compareValues(a, b)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBools(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	default:
		return 0
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
