package valuerange

import "strconv"

// intDomain is the discrete test domain of 64 bit integers with a delta of 1.
type intDomain struct{}

func (intDomain) Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (intDomain) Add(value, delta int64) int64 {
	return value + delta
}

func (intDomain) Sub(value, delta int64) int64 {
	return value - delta
}

func (intDomain) FormatValue(value int64) string {
	return strconv.FormatInt(value, 10)
}

func (intDomain) ParseValue(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

func (intDomain) Delta() int64 {
	return 1
}

func (intDomain) Steps(lower, upper int64) int64 {
	return upper - lower
}

// rawIntDomain shares the value type of intDomain but defines no delta, which makes its Ranges continuous. It exists
// to exercise operations on mixed-kind operands.
type rawIntDomain struct{}

func (rawIntDomain) Compare(a, b int64) int {
	return intDomain{}.Compare(a, b)
}

func (rawIntDomain) Add(value, delta int64) int64 {
	return value + delta
}

func (rawIntDomain) Sub(value, delta int64) int64 {
	return value - delta
}

func (rawIntDomain) FormatValue(value int64) string {
	return strconv.FormatInt(value, 10)
}

func (rawIntDomain) ParseValue(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

// realDomain is the continuous test domain of 64 bit floats.
type realDomain struct{}

func (realDomain) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (realDomain) Add(value, delta float64) float64 {
	return value + delta
}

func (realDomain) Sub(value, delta float64) float64 {
	return value - delta
}

func (realDomain) FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func (realDomain) ParseValue(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

var (
	ints    Domain[int64, int64]     = intDomain{}
	rawInts Domain[int64, int64]     = rawIntDomain{}
	reals   Domain[float64, float64] = realDomain{}
)

func intRange(lower, upper int64, boundType BoundType) *Range[int64, int64] {
	return New(ints, &lower, &upper, boundType)
}

func realRange(lower, upper float64, boundType BoundType) *Range[float64, float64] {
	return New(reals, &lower, &upper, boundType)
}
