package numberer

import "gopkg.in/yaml.v3"

// MarshalYAML emits n as a mapping of values and start_at
func (n Numberer[T]) MarshalYAML() (interface{}, error) {
	return n.Serialised(), nil
}

// UnmarshalYAML replaces n with the Numberer described by value
func (n *Numberer[T]) UnmarshalYAML(value *yaml.Node) error {
	var s Serialised[T]
	if err := value.Decode(&s); err != nil {
		return err
	}
	return n.restore(s)
}
