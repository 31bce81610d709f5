package numberer

// ValueSerialiser can serialise and deserialise an instance of T
type ValueSerialiser[T comparable] interface {
	// Name identifies the serialiser
	Name() string
	// Pack converts an instance of T to a byte slice
	Pack(t T) ([]byte, error)
	// Unpack recovers an instance of T from a byte slice
	Unpack(data []byte) (T, error)
}
