package valuerange

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrKindMismatch is returned when a binary operation receives a discrete and a continuous Range at once.
	ErrKindMismatch = errors.New("cannot mix discrete and continuous ranges")

	// ErrUnsupportedOperation is returned when length or iteration is requested on a Domain without a defined delta.
	ErrUnsupportedOperation = errors.New("operation requires a domain with a defined delta")

	// ErrUnboundedIteration is returned when iteration is requested on a Range with an infinite bound.
	ErrUnboundedIteration = errors.New("cannot iterate over range with infinite bound")

	// ErrParseFailed is returned when a textual range notation does not match the expected shape.
	ErrParseFailed = errors.New("failed to parse range notation")
)
