package maputil

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

func removeFromSlice[T any](slice []T, s int) []T {
	return append(slice[:s], slice[s+1:]...)
}

type OrderedMap[T any] struct {
	keys []string
	// data - Important: Do not ever expose `data` out, always use Get, Add, Remove methods as it will cause corruption between `data` and `keys`
	data map[string]T
	// caseSensitive - if true - will preserve original casing, else it will lowercase everything
	caseSensitive bool
}

func NewOrderedMap[T any](caseSensitive bool) *OrderedMap[T] {
	return &OrderedMap[T]{
		keys:          []string{},
		data:          make(map[string]T),
		caseSensitive: caseSensitive,
	}
}

func (o *OrderedMap[T]) normalize(key string) string {
	if !o.caseSensitive {
		return strings.ToLower(key)
	}

	return key
}

func (o *OrderedMap[T]) Remove(key string) (removed bool) {
	key = o.normalize(key)
	if index := slices.Index(o.keys, key); index >= 0 {
		delete(o.data, key)
		o.keys = removeFromSlice(o.keys, index)
		return true
	}

	return false
}

// Add will insert the key at the end if it's new, otherwise it will overwrite the value in place.
func (o *OrderedMap[T]) Add(key string, value T) {
	key = o.normalize(key)
	if _, ok := o.data[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.data[key] = value
}

func (o *OrderedMap[T]) Get(key string) (T, bool) {
	val, ok := o.data[o.normalize(key)]
	return val, ok
}

func (o *OrderedMap[T]) Len() int {
	return len(o.keys)
}

func (o *OrderedMap[T]) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *OrderedMap[T]) Clone() *OrderedMap[T] {
	return &OrderedMap[T]{
		keys:          slices.Clone(o.keys),
		data:          maps.Clone(o.data),
		caseSensitive: o.caseSensitive,
	}
}

// All returns an in-order iterator over key-value pairs.
func (o *OrderedMap[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, key := range o.keys {
			if value, ok := o.data[key]; ok {
				if !yield(key, value) {
					break
				}
			}
		}
	}
}
