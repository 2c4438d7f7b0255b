package valuerange

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
)

// region binary serialization /////////////////////////////////////////////////////////////////////////////////////////

// Bytes returns a marshaled version of the Range. The bound values are serialized through the Domain's textual value
// format, which keeps the encoding independent of the value type.
func (r *Range[V, D]) Bytes() []byte {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteByte(byte(r.boundType))
	writeOptionalValue(marshalUtil, r.domain, r.lower)
	writeOptionalValue(marshalUtil, r.domain, r.upper)

	return marshalUtil.Bytes()
}

// FromBytes unmarshals a Range from a sequence of bytes that was produced for the given Domain.
func FromBytes[V, D any](domain Domain[V, D], bytes []byte) (r *Range[V, D], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if r, err = FromMarshalUtil(domain, marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Range from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a Range using a MarshalUtil (for easier marshaling/unmarshaling of composed types).
func FromMarshalUtil[V, D any](domain Domain[V, D], marshalUtil *marshalutil.MarshalUtil) (r *Range[V, D], err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, errors.Errorf("failed to parse BoundType (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	boundType := BoundType(boundTypeByte)
	if boundType > BoundTypeOpen {
		return nil, errors.Errorf("invalid BoundType %d: %w", boundTypeByte, cerrors.ErrParseBytesFailed)
	}

	lower, err := readOptionalValue(marshalUtil, domain)
	if err != nil {
		return nil, errors.Errorf("failed to parse lower bound: %w", err)
	}
	upper, err := readOptionalValue(marshalUtil, domain)
	if err != nil {
		return nil, errors.Errorf("failed to parse upper bound: %w", err)
	}

	return New(domain, lower, upper, boundType), nil
}

// writeOptionalValue writes a presence flag followed by the length-prefixed textual form of the value.
func writeOptionalValue[V, D any](marshalUtil *marshalutil.MarshalUtil, domain Domain[V, D], value *V) {
	marshalUtil.WriteBool(value != nil)
	if value == nil {
		return
	}

	token := []byte(domain.FormatValue(*value))
	marshalUtil.WriteUint32(uint32(len(token)))
	marshalUtil.WriteBytes(token)
}

// readOptionalValue reads an optional bound value written by writeOptionalValue.
func readOptionalValue[V, D any](marshalUtil *marshalutil.MarshalUtil, domain Domain[V, D]) (value *V, err error) {
	exists, err := marshalUtil.ReadBool()
	if err != nil {
		return nil, errors.Errorf("failed to parse presence flag (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	if !exists {
		return nil, nil
	}

	tokenLength, err := marshalUtil.ReadUint32()
	if err != nil {
		return nil, errors.Errorf("failed to parse value length (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	token, err := marshalUtil.ReadBytes(int(tokenLength))
	if err != nil {
		return nil, errors.Errorf("failed to parse value bytes (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	parsedValue, err := domain.ParseValue(string(token))
	if err != nil {
		return nil, errors.Errorf("failed to parse value %q (%v): %w", string(token), err, cerrors.ErrParseBytesFailed)
	}

	return &parsedValue, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
