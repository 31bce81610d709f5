package numberer

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/gford1000-go/serialise"
)

func TestPack(t *testing.T) {

	n := testNumberer(t)

	b, err := Pack(n, NewStringSerialiser())
	if err != nil {
		t.Fatalf("Unexpected error during pack: %v", err)
	}

	r, err := Unpack(b, NewStringSerialiser())
	if err != nil {
		t.Fatalf("Unexpected error during unpack: %v", err)
	}

	if !n.Equal(r) {
		t.Fatalf("Mismatch after round trip: wanted %v, got: %v", n, r)
	}
	if id, ok := r.Number("world"); !ok || id != 14 {
		t.Fatalf("Unexpected Number for world: %d (%v)", id, ok)
	}
	if v, ok := r.Value(15); !ok || v != "!" {
		t.Fatalf("Unexpected Value for 15: %q (%v)", v, ok)
	}
	if r.Len() != 16 {
		t.Fatalf("Unexpected Len: wanted 16, got: %d", r.Len())
	}
}

func TestPack_Empty(t *testing.T) {

	for _, startAt := range []int{0, 5} {
		n := New[int64](startAt)

		b, err := Pack(n, NewInt64Serialiser())
		if err != nil {
			t.Fatalf("Unexpected error during pack: %v", err)
		}

		r, err := Unpack(b, NewInt64Serialiser())
		if err != nil {
			t.Fatalf("Unexpected error during unpack: %v", err)
		}
		if !r.IsEmpty() || r.Len() != startAt {
			t.Fatalf("Unexpected Numberer after round trip: %v", r)
		}
	}
}

func TestPack_Encrypted(t *testing.T) {

	key := []byte("01234567890123456789012345678912")

	n := testNumberer(t)

	b, err := Pack(n, NewStringSerialiser(), WithSerialisationOptions(serialise.WithAESGCMEncryption(key)))
	if err != nil {
		t.Fatalf("Unexpected error during pack: %v", err)
	}

	r, err := Unpack(b, NewStringSerialiser(), WithSerialisationOptions(serialise.WithAESGCMEncryption(key)))
	if err != nil {
		t.Fatalf("Unexpected error during unpack: %v", err)
	}
	if !n.Equal(r) {
		t.Fatalf("Mismatch after round trip: wanted %v, got: %v", n, r)
	}

	// Missing key
	r, err = Unpack(b, NewStringSerialiser())
	if err == nil {
		t.Fatal("Unexpected success when expecting error")
	}
	if r != nil {
		t.Fatal("Unexpected instance returned when expecting nil")
	}
}

func TestPack_Errors(t *testing.T) {

	_, err := Pack[string](nil, NewStringSerialiser())
	if !errors.Is(err, ErrPackNoNumberer) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrPackNoNumberer, err)
	}

	_, err = Pack(testNumberer(t), nil)
	if !errors.Is(err, ErrPackNoSerialiser) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrPackNoSerialiser, err)
	}
}

func TestUnpack_Errors(t *testing.T) {

	_, err := Unpack([]byte{}, NewStringSerialiser())
	if !errors.Is(err, ErrUnpackNoData) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrUnpackNoData, err)
	}

	b, err := Pack(testNumberer(t), NewStringSerialiser())
	if err != nil {
		t.Fatalf("Unexpected error during pack: %v", err)
	}

	_, err = Unpack[string](b, nil)
	if !errors.Is(err, ErrPackNoSerialiser) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrPackNoSerialiser, err)
	}

	// Values packed as strings cannot be recovered as int64
	_, err = Unpack(b, NewInt64Serialiser())
	if !errors.Is(err, ErrValueDeserialisationError) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrValueDeserialisationError, err)
	}

	// Not prefixed with a pack version
	bad, _, err := serialise.ToBytesMany([]any{"x", []byte{1}}, serialise.WithSerialisationApproach(serialise.NewMinDataApproachWithVersion(serialise.V1)))
	if err != nil {
		t.Fatalf("Unexpected error preparing data: %v", err)
	}
	_, err = Unpack(bad, NewStringSerialiser())
	if !errors.Is(err, ErrUnpackInvalidData) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrUnpackInvalidData, err)
	}

	// Unknown pack version
	bad, _, err = serialise.ToBytesMany([]any{int8(OutOfRange), []byte{1}}, serialise.WithSerialisationApproach(serialise.NewMinDataApproachWithVersion(serialise.V1)))
	if err != nil {
		t.Fatalf("Unexpected error preparing data: %v", err)
	}
	_, err = Unpack(bad, NewStringSerialiser())
	if !errors.Is(err, ErrUnsupportedPackVersion) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrUnsupportedPackVersion, err)
	}
}

func TestWithPackVersion(t *testing.T) {

	for _, v := range []PackVersion{UnknownVersion, OutOfRange} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("Expected panic for PackVersion %d", v)
				}
			}()
			WithPackVersion(v)
		}()
	}

	b, err := Pack(testNumberer(t), NewStringSerialiser(), WithPackVersion(V1))
	if err != nil {
		t.Fatalf("Unexpected error during pack: %v", err)
	}
	if _, err := Unpack(b, NewStringSerialiser()); err != nil {
		t.Fatalf("Unexpected error during unpack: %v", err)
	}
}

func TestPackingDetailsV1_StartAtOutOfRange(t *testing.T) {

	if strconv.IntSize == 64 {
		t.Skip("every int64 start_at fits in int on this platform")
	}

	opts := newPackOptions(nil)

	values, _, err := serialise.ToBytesMany([]any{}, opts.serialiseOptions...)
	if err != nil {
		t.Fatalf("Unexpected error preparing data: %v", err)
	}
	data, _, err := serialise.ToBytesMany([]any{int64(math.MaxInt32) + 1, values}, opts.serialiseOptions...)
	if err != nil {
		t.Fatalf("Unexpected error preparing data: %v", err)
	}

	d := &packingDetailsV1[string]{
		serialiser: NewStringSerialiser(),
		opts:       opts,
	}
	if err := d.unpack(data); !errors.Is(err, ErrUnpackInvalidData) {
		t.Fatalf("Unexpected error: expected: %v, got: %v", ErrUnpackInvalidData, err)
	}
}
