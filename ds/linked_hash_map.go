package ds

import (
	"bytes"
	"encoding/json"
)

// LinkedHashMap is a map that hands its keys back in insertion order,
// for JSON objects whose field order should read top-down the way it
// was built.
type LinkedHashMap[K comparable, V any] struct {
	values map[K]V
	order  []K
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		values: map[K]V{},
		order:  make([]K, 0),
	}
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	return ShallowCopy(r.order)
}

// Put inserts or replaces. A replaced key keeps its original position
// in the ordering.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.values[key]; !existed {
		r.order = append(r.order, key)
	}
	r.values[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.values[key]
	return value, ok
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteRune('{')
	for i, key := range r.order {
		if i > 0 {
			buf.WriteRune(',')
		}
		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteRune(':')
		valueBytes, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteRune('}')
	return buf.Bytes(), nil
}
