package store

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
)

// PutAll inserts every pair from entries. A rejected pair does not stop the
// remaining inserts; all failures are returned together.
func (h *HashTable[K, V]) PutAll(entries iter.Seq2[K, V]) error {
	var errs error
	n := 0
	for k, v := range entries {
		if err := h.Put(k, v); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", n, err))
		}
		n++
	}
	return errs
}
