package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one named record of an Ordered collection.
type Entry[V any] struct {
	Name  string
	Value V
}

// Ordered is a name-keyed collection that encodes as a JSON object with its
// entries in slice order rather than sorted by name.
type Ordered[V any] []Entry[V]

// Get returns the entry called name.
func (o Ordered[V]) Get(name string) (V, bool) {
	for _, e := range o {
		if e.Name == name {
			return e.Value, true
		}
	}

	var zero V

	return zero, false
}

// Names returns the entry names in order.
func (o Ordered[V]) Names() []string {
	names := make([]string, 0, len(o))
	for _, e := range o {
		names = append(names, e.Name)
	}

	return names
}

// MarshalJSON implements json.Marshaler. A nil collection encodes as {}.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", e.Name, err)
		}

		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", e.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
