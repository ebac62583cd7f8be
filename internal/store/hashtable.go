// Package store implements a fixed-capacity hash table that resolves
// collisions by separate chaining.
//
// The table never resizes and performs no internal locking. Callers sharing a
// table across goroutines must guard every call with a single mutex.
package store

import (
	"fmt"
	"iter"
	"reflect"
)

const DefaultCapacity = 10

// Key is the capability a key type must provide. Equal keys must produce
// equal hash codes, and neither result may change while the key is stored.
type Key[K any] interface {
	HashCode() int32
	Equals(other K) bool
}

type entry[K Key[K], V any] struct {
	key   K
	value V
}

type HashTable[K Key[K], V any] struct {
	buckets [][]*entry[K, V]
	size    int
}

func NewHashTable[K Key[K], V any](opts ...Option) *HashTable[K, V] {
	cfg := newConfig(opts)
	return &HashTable[K, V]{
		buckets: make([][]*entry[K, V], cfg.capacity),
	}
}

// BucketIndex reduces the key's hash into [0, Capacity). It panics with
// ErrNilKey when key is nil.
func (h *HashTable[K, V]) BucketIndex(key K) int {
	mustKey(key)
	return bucketIndex(key.HashCode(), len(h.buckets))
}

// bucketIndex is computed in int64 so neither math.MinInt32 nor a capacity
// above 2^30 on 32-bit platforms can overflow.
func bucketIndex(hash int32, n int) int {
	m := int64(n)
	return int(((int64(hash) % m) + m) % m)
}

func (h *HashTable[K, V]) find(key K) (int, int) {
	index := h.BucketIndex(key)
	for i, e := range h.buckets[index] {
		if e.key.Equals(key) {
			return index, i
		}
	}
	return index, -1
}

func (h *HashTable[K, V]) Put(key K, value V) error {
	if isNil(key) {
		return ErrNilKey
	}

	index, pos := h.find(key)
	if pos >= 0 {
		h.buckets[index][pos].value = value
		return nil
	}

	h.buckets[index] = append(h.buckets[index], &entry[K, V]{key: key, value: value})
	h.size++
	return nil
}

// Get panics with ErrNilKey when key is nil.
func (h *HashTable[K, V]) Get(key K) (V, bool) {
	index, pos := h.find(key)
	if pos < 0 {
		var zero V
		return zero, false
	}
	return h.buckets[index][pos].value, true
}

func (h *HashTable[K, V]) Exists(key K) bool {
	_, exists := h.Get(key)
	return exists
}

// Remove deletes the entry for key and reports whether one was present. It
// panics with ErrNilKey when key is nil.
func (h *HashTable[K, V]) Remove(key K) bool {
	index, pos := h.find(key)
	if pos < 0 {
		return false
	}

	bucket := h.buckets[index]
	copy(bucket[pos:], bucket[pos+1:])
	bucket[len(bucket)-1] = nil
	h.buckets[index] = bucket[:len(bucket)-1]
	h.size--
	return true
}

func (h *HashTable[K, V]) Len() int {
	return h.size
}

func (h *HashTable[K, V]) Capacity() int {
	return len(h.buckets)
}

func (h *HashTable[K, V]) BucketLen(i int) int {
	if i < 0 || i >= len(h.buckets) {
		return 0
	}
	return len(h.buckets[i])
}

// All yields every entry in bucket order, then insertion order within a
// bucket. The table must not be modified while the sequence is running.
func (h *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range h.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (h *HashTable[K, V]) Keys() []K {
	keys := make([]K, 0, h.size)
	for k := range h.All() {
		keys = append(keys, k)
	}
	return keys
}

func (h *HashTable[K, V]) Values() []V {
	values := make([]V, 0, h.size)
	for _, v := range h.All() {
		values = append(values, v)
	}
	return values
}

func mustKey[K any](key K) {
	if isNil(key) {
		panic(fmt.Errorf("store: %w", ErrNilKey))
	}
}

func isNil[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
