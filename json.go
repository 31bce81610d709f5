package numberer

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON writes n as {"values":[...],"start_at":n}
func (n Numberer[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Serialised())
}

// UnmarshalJSON replaces n with the Numberer described by data.
// A JSON null leaves n unchanged.
func (n *Numberer[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s Serialised[T]
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return n.restore(s)
}

// restore replaces the contents of n, leaving n untouched on error
func (n *Numberer[T]) restore(s Serialised[T]) error {
	r, err := FromSerialised(s)
	if err != nil {
		return err
	}
	*n = *r
	return nil
}
