package valuerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundTypeFromBrackets(t *testing.T) {
	boundType, err := BoundTypeFromBrackets('[', ')')
	require.NoError(t, err)
	assert.Equal(t, BoundTypeClosedOpen, boundType)

	boundType, err = BoundTypeFromBrackets('[', ']')
	require.NoError(t, err)
	assert.Equal(t, BoundTypeClosed, boundType)

	boundType, err = BoundTypeFromBrackets('(', ']')
	require.NoError(t, err)
	assert.Equal(t, BoundTypeOpenClosed, boundType)

	boundType, err = BoundTypeFromBrackets('(', ')')
	require.NoError(t, err)
	assert.Equal(t, BoundTypeOpen, boundType)

	_, err = BoundTypeFromBrackets('{', ')')
	assert.Error(t, err)
}

func TestBoundTypeExclusivity(t *testing.T) {
	assert.False(t, BoundTypeClosedOpen.LowerExclusive())
	assert.True(t, BoundTypeClosedOpen.UpperExclusive())
	assert.False(t, BoundTypeClosed.LowerExclusive())
	assert.False(t, BoundTypeClosed.UpperExclusive())
	assert.True(t, BoundTypeOpenClosed.LowerExclusive())
	assert.False(t, BoundTypeOpenClosed.UpperExclusive())
	assert.True(t, BoundTypeOpen.LowerExclusive())
	assert.True(t, BoundTypeOpen.UpperExclusive())

	for _, boundType := range []BoundType{BoundTypeClosedOpen, BoundTypeClosed, BoundTypeOpenClosed, BoundTypeOpen} {
		rebuilt := boundTypeFromExclusivity(boundType.LowerExclusive(), boundType.UpperExclusive())
		assert.Equal(t, boundType, rebuilt)
	}
}

func TestBoundTypeBrackets(t *testing.T) {
	assert.Equal(t, byte('['), BoundTypeClosed.LowerBracket())
	assert.Equal(t, byte(']'), BoundTypeClosed.UpperBracket())
	assert.Equal(t, byte('('), BoundTypeOpen.LowerBracket())
	assert.Equal(t, byte(')'), BoundTypeOpen.UpperBracket())
}
