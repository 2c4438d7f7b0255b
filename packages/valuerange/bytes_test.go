package valuerange

import (
	"testing"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	for _, original := range []*Range[int64, int64]{
		intRange(1, 5, BoundTypeClosed),
		intRange(-3, 7, BoundTypeOpen),
		New(ints, nil, Value(int64(5)), BoundTypeClosedOpen),
		New(ints, Value(int64(3)), nil, BoundTypeOpenClosed),
		New[int64, int64](ints, nil, nil),
	} {
		marshaledRange := original.Bytes()
		restoredRange, consumedBytes, err := FromBytes(ints, marshaledRange)
		require.NoError(t, err)
		assert.Equal(t, len(marshaledRange), consumedBytes)
		assert.Equal(t, original, restoredRange)
	}
}

func TestFromBytesInvalidBoundType(t *testing.T) {
	marshaledRange := intRange(1, 5, BoundTypeClosed).Bytes()
	marshaledRange[0] = byte(BoundTypeOpen) + 1

	_, _, err := FromBytes(ints, marshaledRange)
	assert.ErrorIs(t, err, cerrors.ErrParseBytesFailed)
}

func TestFromBytesTruncated(t *testing.T) {
	marshaledRange := intRange(1, 5, BoundTypeClosed).Bytes()

	_, _, err := FromBytes(ints, marshaledRange[:len(marshaledRange)-1])
	assert.ErrorIs(t, err, cerrors.ErrParseBytesFailed)
}
