package set

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = (*ConcurrentSet[int])(nil)
	_ json.Unmarshaler = (*ConcurrentSet[int])(nil)
	_ yaml.Marshaler   = (*ConcurrentSet[int])(nil)
	_ yaml.Unmarshaler = (*ConcurrentSet[int])(nil)
)

// MarshalJSON encodes the set as a JSON array in no particular order
func (s *ConcurrentSet[T]) MarshalJSON() ([]byte, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	return json.Marshal(snap.items)
}

// UnmarshalJSON replaces the set contents with the decoded array
func (s *ConcurrentSet[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "could not decode set items")
	}

	return s.replace("unmarshal json", items)
}

// MarshalYAML encodes the set as a YAML sequence in no particular order
func (s *ConcurrentSet[T]) MarshalYAML() (interface{}, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	return snap.items, nil
}

// UnmarshalYAML replaces the set contents with the decoded sequence
func (s *ConcurrentSet[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return errors.Wrap(err, "could not decode set items")
	}

	return s.replace("unmarshal yaml", items)
}

func (s *ConcurrentSet[T]) replace(op string, items []T) error {
	return s.write(op, func(elements *HashSet[T]) error {
		elements.Clear()
		elements.InsertSlice(items)
		return nil
	})
}
