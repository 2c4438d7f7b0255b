package domains

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangekit/rangekit/packages/valuerange"
)

func TestDateRange(t *testing.T) {
	r := DateRange(Date(2024, time.January, 1), Date(2024, time.January, 5), valuerange.BoundTypeClosed)
	assert.Equal(t, "[2024-01-01, 2024-01-05]", r.String())

	length, err := r.Length()
	require.NoError(t, err)
	assert.Equal(t, valuerange.Length(5), length)

	values, err := r.Values()
	require.NoError(t, err)
	require.Len(t, values, 5)
	assert.Equal(t, Date(2024, time.January, 1), values[0])
	assert.Equal(t, Date(2024, time.January, 5), values[4])

	halfOpen, err := valuerange.Parse(Dates, "[2024-01-01, 2024-01-05)")
	require.NoError(t, err)
	length, err = halfOpen.Length()
	require.NoError(t, err)
	assert.Equal(t, valuerange.Length(4), length)
}

func TestDateRangeFiniteDefaults(t *testing.T) {
	// unbounded sides resolve to the first and last representable date
	r := NewDateRange(nil, nil)
	assert.Equal(t, "[None, None)", r.String())
	assert.True(t, r.Contains(Date(2024, time.June, 15)))

	length, err := r.Length()
	require.NoError(t, err)
	assert.Equal(t, valuerange.Length(3652058), length)

	lowerFirst, exists := r.LowerBound().First()
	require.True(t, exists)
	assert.Equal(t, Date(1, time.January, 1), lowerFirst)
	upperFirst, exists := r.UpperBound().First()
	require.True(t, exists)
	assert.Equal(t, Date(9999, time.December, 30), upperFirst)
}

func TestDateRangeUnboundedSides(t *testing.T) {
	infiniteUpper := NewDateRange(valuerange.Value(Date(2024, time.January, 1)), nil)
	length, err := infiniteUpper.Length()
	require.NoError(t, err)
	assert.Equal(t, valuerange.Length(2913173), length)

	infiniteLower := NewDateRange(nil, valuerange.Value(Date(2024, time.January, 5)))
	length, err = infiniteLower.Length()
	require.NoError(t, err)
	assert.Equal(t, valuerange.Length(738889), length)
}

func TestDateRangeOperations(t *testing.T) {
	january := DateRange(Date(2024, time.January, 1), Date(2024, time.February, 1), valuerange.BoundTypeClosedOpen)
	february := DateRange(Date(2024, time.February, 1), Date(2024, time.March, 1), valuerange.BoundTypeClosedOpen)

	overlaps, err := january.Overlaps(february)
	require.NoError(t, err)
	assert.False(t, overlaps)

	isAdjacent, err := january.IsAdjacent(february)
	require.NoError(t, err)
	assert.True(t, isAdjacent)

	union, err := january.Union(february)
	require.NoError(t, err)
	assert.True(t, union.IsEmpty())

	shifted := january.Shift(14 * 24 * time.Hour)
	assert.Equal(t, "[2024-01-15, 2024-02-15)", shifted.String())
}

func TestDateRangeBytes(t *testing.T) {
	original := DateRange(Date(2024, time.January, 1), Date(2024, time.January, 5), valuerange.BoundTypeClosed)

	restored, consumedBytes, err := valuerange.FromBytes(Dates, original.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(original.Bytes()), consumedBytes)
	assert.Equal(t, original.String(), restored.String())
	assert.True(t, original.Equal(restored))
}
