package numberer

import (
	"errors"

	"github.com/gford1000-go/serialise"
)

// ErrValueDeserialisationError is raised when data does not deserialise to a value of the expected type
var ErrValueDeserialisationError = errors.New("invalid data passed - cannot deserialise value")

// minDataV1 is fixed for the built-in serialisers; changing it would make packed data unrecoverable
func minDataV1() serialise.Approach {
	return serialise.NewMinDataApproachWithVersion(serialise.V1)
}

// NewStringSerialiser returns a ValueSerialiser for string values.
// Utilises V1 of the serialise MinDataApproach.
func NewStringSerialiser() ValueSerialiser[string] {
	return &stringSerialiser{
		a: minDataV1(),
		n: "StringV1",
	}
}

type stringSerialiser struct {
	n string
	a serialise.Approach
}

func (s *stringSerialiser) Name() string {
	return s.n
}

func (s *stringSerialiser) Pack(v string) ([]byte, error) {
	b, _, err := serialise.ToBytes(v, serialise.WithSerialisationApproach(s.a))
	return b, err
}

func (s *stringSerialiser) Unpack(data []byte) (string, error) {
	v, err := serialise.FromBytes(data, s.a)
	if err != nil {
		return "", err
	}
	if str, ok := v.(string); ok {
		return str, nil
	}
	return "", ErrValueDeserialisationError
}

// NewInt64Serialiser returns a ValueSerialiser for int64 values, such as
// identifiers numbered by some other system.
func NewInt64Serialiser() ValueSerialiser[int64] {
	return &int64Serialiser{n: "Int64V1"}
}

type int64Serialiser struct {
	n string
}

func (s *int64Serialiser) Name() string {
	return s.n
}

func (s *int64Serialiser) Pack(v int64) ([]byte, error) {
	return serialiseI64(v)
}

func (s *int64Serialiser) Unpack(data []byte) (int64, error) {
	return deserialiseI64(data)
}

// serialiseI64 ensures a standard treatment of int64 serialisation
func serialiseI64(v int64) ([]byte, error) {
	b, _, err := serialise.ToBytes(v, serialise.WithSerialisationApproach(minDataV1()))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// deserialiseI64 deserialises an int64 from material created by serialiseI64
func deserialiseI64(data []byte) (int64, error) {
	v, err := serialise.FromBytes(data, minDataV1())
	if err != nil {
		return 0, err
	}
	if i, ok := v.(int64); ok {
		return i, nil
	}
	return 0, ErrValueDeserialisationError
}
