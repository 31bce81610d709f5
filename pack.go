package numberer

import (
	"errors"
	"fmt"

	"github.com/gford1000-go/serialise"
)

// PackOptions control how Pack and Unpack serialise a Numberer
type PackOptions struct {
	// Which packing mechanism is used
	packVersion PackVersion
	// Approach used for the packed values
	approach serialise.Approach
	// Serialisation options, e.g. encryption
	serialiseOptions []func(*serialise.Options)
}

// WithPackVersion selects the packing mechanism
func WithPackVersion(version PackVersion) func(*PackOptions) {
	if version <= UnknownVersion || version >= OutOfRange {
		panic("invalid PackVersion value provided")
	}
	return func(o *PackOptions) {
		o.packVersion = version
	}
}

// WithApproach sets the serialise.Approach used for the packed values.
// Defaults to V1 of the MinDataApproach.
func WithApproach(approach serialise.Approach) func(*PackOptions) {
	return func(o *PackOptions) {
		o.approach = approach
	}
}

// WithSerialisationOptions allows options for serialisation to be applied,
// such as serialise.WithAESGCMEncryption.  The same options must be given to Unpack.
func WithSerialisationOptions(opts ...func(*serialise.Options)) func(*PackOptions) {
	return func(o *PackOptions) {
		o.serialiseOptions = append(o.serialiseOptions, opts...)
	}
}

// PackVersion describes a version of a Pack serialisation implementation
// All breaking changes to serialisation will trigger an increment, to ensure
// backwards compatibility to any consumers with data serialised using existing versions.
type PackVersion int8

const (
	UnknownVersion PackVersion = iota
	V1
	OutOfRange
)

const defaultPackVersion PackVersion = V1

func newPackOptions(opts []func(*PackOptions)) *PackOptions {
	o := &PackOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.packVersion == UnknownVersion {
		o.packVersion = defaultPackVersion
	}
	if o.approach == nil {
		o.approach = minDataV1()
	}

	// Ensure the Approach will be used
	o.serialiseOptions = append(o.serialiseOptions, serialise.WithSerialisationApproach(o.approach))
	return o
}

// ErrPackNoNumberer raised when Pack is called with a nil Numberer
var ErrPackNoNumberer = errors.New("no Numberer to pack")

// ErrPackNoSerialiser raised if no ValueSerialiser is provided to Pack or Unpack
var ErrPackNoSerialiser = errors.New("a ValueSerialiser must be provided to allow values to be serialised")

// ErrUnsupportedPackVersion raised if a packing version is requested that is not available
var ErrUnsupportedPackVersion = errors.New("unsupported pack version requested")

// Pack serialises n to a byte slice, using serialiser for each value.
// As with the Serialised form, only the values and start number are stored.
func Pack[T comparable](n *Numberer[T], serialiser ValueSerialiser[T], opts ...func(*PackOptions)) (data []byte, e error) {

	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("%v", r)
		}
	}()

	if n == nil {
		return nil, ErrPackNoNumberer
	}
	if serialiser == nil {
		return nil, ErrPackNoSerialiser
	}

	o := newPackOptions(opts)

	var err error

	// Process using the selected packing approach
	switch o.packVersion {
	case V1:
		d := &packingDetailsV1[T]{
			serialiser: serialiser,
			opts:       o,
			values:     n.values,
			startAt:    n.startAt,
		}
		data, err = d.pack()
	default:
		err = ErrUnsupportedPackVersion
	}

	if err != nil {
		return nil, err
	}

	// Prefix with the packVersion selected
	data, _, err = serialise.ToBytesMany([]any{int8(o.packVersion), data}, serialise.WithSerialisationApproach(minDataV1()))
	if err != nil {
		return nil, err
	}

	return data, nil
}

// ErrUnpackNoData raised if Unpack is given an empty byte slice
var ErrUnpackNoData = errors.New("no data to unpack")

// ErrUnpackInvalidData raised if the data was not created by Pack
var ErrUnpackInvalidData = errors.New("unable to unpack - invalid data")

// Unpack deserialises a byte slice that was prepared using Pack, rebuilding
// the Numberer as FromSerialised does.
func Unpack[T comparable](data []byte, serialiser ValueSerialiser[T], opts ...func(*PackOptions)) (n *Numberer[T], e error) {

	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("%v", r)
		}
	}()

	if len(data) == 0 {
		return nil, ErrUnpackNoData
	}
	if serialiser == nil {
		return nil, ErrPackNoSerialiser
	}

	v, err := serialise.FromBytesMany(data, minDataV1())
	if err != nil {
		return nil, err
	}
	if len(v) != 2 {
		return nil, ErrUnpackInvalidData
	}

	packVersion, ok := v[0].(int8)
	if !ok {
		return nil, ErrUnpackInvalidData
	}

	b, ok := v[1].([]byte)
	if !ok {
		return nil, ErrUnpackInvalidData
	}

	switch PackVersion(packVersion) {
	case V1:
		d := &packingDetailsV1[T]{
			serialiser: serialiser,
			opts:       newPackOptions(opts),
		}
		if err := d.unpack(b); err != nil {
			return nil, err
		}
		return FromSerialised(Serialised[T]{Values: d.values, StartAt: d.startAt})
	default:
		return nil, ErrUnsupportedPackVersion
	}
}
