package numberer

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode is canonical, so equal Numberers always encode to equal bytes
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("numberer: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalCBOR encodes n as a CBOR map holding values and start_at
func (n Numberer[T]) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(n.Serialised())
}

// UnmarshalCBOR replaces n with the Numberer described by data
func (n *Numberer[T]) UnmarshalCBOR(data []byte) error {
	var s Serialised[T]
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("numberer: unmarshal cbor: %w", err)
	}
	return n.restore(s)
}
