package numberer

import (
	"errors"
	"math"

	"github.com/gford1000-go/serialise"
)

type packingDetailsV1[T comparable] struct {
	serialiser ValueSerialiser[T]
	opts       *PackOptions
	values     []T
	startAt    int
}

// pack produces [start_at, [value...]], with each value packed by the serialiser
func (d *packingDetailsV1[T]) pack() ([]byte, error) {

	b, err := d.packValuesSlice()
	if err != nil {
		return nil, err
	}

	data, _, err := serialise.ToBytesMany([]any{int64(d.startAt), b}, d.opts.serialiseOptions...)
	return data, err
}

func (d *packingDetailsV1[T]) unpack(data []byte) error {

	v, err := serialise.FromBytesMany(data, d.opts.approach, d.opts.serialiseOptions...)
	if err != nil {
		return err
	}
	if len(v) != 2 {
		return ErrUnpackInvalidData
	}

	startAt, ok := v[0].(int64)
	if !ok {
		return ErrUnpackInvalidData
	}
	if startAt < 0 {
		return ErrNegativeStartAt
	}
	if startAt > math.MaxInt {
		return ErrUnpackInvalidData
	}

	b, ok := v[1].([]byte)
	if !ok {
		return ErrUnpackInvalidData
	}

	if err := d.unpackValuesSlice(b); err != nil {
		return err
	}
	d.startAt = int(startAt)
	return nil
}

func (d *packingDetailsV1[T]) packValuesSlice() ([]byte, error) {

	eles := make([]any, len(d.values))

	for i, ele := range d.values {
		b, err := d.serialiser.Pack(ele)
		if err != nil {
			return nil, err
		}
		eles[i] = b
	}

	b, _, err := serialise.ToBytesMany(eles, d.opts.serialiseOptions...)
	return b, err
}

// ErrInvalidDataToDeserialiseValues raised if the packed values are not a slice of byte slices
var ErrInvalidDataToDeserialiseValues = errors.New("invalid data, cannot deserialise values slice")

func (d *packingDetailsV1[T]) unpackValuesSlice(data []byte) error {

	v, err := serialise.FromBytesMany(data, d.opts.approach, d.opts.serialiseOptions...)
	if err != nil {
		return err
	}

	values := make([]T, len(v))

	for i := 0; i < len(v); i++ {
		b, ok := v[i].([]byte)
		if !ok {
			return ErrInvalidDataToDeserialiseValues
		}

		t, err := d.serialiser.Unpack(b)
		if err != nil {
			return err
		}

		values[i] = t
	}

	d.values = values
	return nil
}
