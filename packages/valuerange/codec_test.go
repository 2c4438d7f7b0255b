package valuerange

import (
	"encoding/json"
	"testing"

	"github.com/iotaledger/hive.go/generics/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t, "[1, 5]", lo.PanicOnErr(Parse(ints, "[1, 5]")).String())
	assert.Equal(t, "(1, 5)", lo.PanicOnErr(Parse(ints, " (1,5 ) ")).String())

	// missing brackets default to an inclusive lower and an exclusive upper bound
	r := lo.PanicOnErr(Parse(ints, "1, 5"))
	assert.Equal(t, BoundTypeClosedOpen, r.BoundType())
	assert.Equal(t, "[1, 5)", r.String())

	// empty tokens and "None" leave the side unbounded
	assert.Equal(t, "[None, 5)", lo.PanicOnErr(Parse(ints, ",5")).String())
	assert.Equal(t, "[3, None)", lo.PanicOnErr(Parse(ints, "3,")).String())
	assert.Equal(t, "[None, 5)", lo.PanicOnErr(Parse(ints, "None, 5")).String())
	assert.Equal(t, "[None, None)", lo.PanicOnErr(Parse(ints, "[None, None)")).String())

	realRange := lo.PanicOnErr(Parse(reals, "[1.5, 2.25]"))
	lower, exists := realRange.Lower()
	require.True(t, exists)
	assert.Equal(t, 1.5, lower)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(ints, "[1, 5")
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = Parse(ints, "1, 5]")
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = Parse(ints, "[a, 5]")
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = Parse(ints, "")
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestStringRoundTrip(t *testing.T) {
	for _, notation := range []string{"[1, 5]", "(1, 5)", "[1, 5)", "(1, 5]", "[None, 5)", "[3, None)", "[None, None)"} {
		assert.Equal(t, notation, lo.PanicOnErr(Parse(ints, notation)).String())
	}
}

func TestMarshalJSON(t *testing.T) {
	marshaledRange, err := json.Marshal(intRange(1, 5, BoundTypeClosed))
	require.NoError(t, err)
	assert.Equal(t, `"[1, 5]"`, string(marshaledRange))
}
