// Package memo provides a generic in-memory memoization table.
//
// A Table maps comparable keys to computed values and never evicts:
// entries accumulate for the lifetime of the table. This suits
// exhaustive combinatorial searches where the set of distinct keys is
// bounded and every entry is likely to be hit again.
//
// Tables are not safe for concurrent use. Callers running computations
// from multiple goroutines must synchronize externally or give each
// goroutine its own table.
package memo

// Table is an append-only lookup table keyed by K.
//
// The zero value is not usable; use New to create instances.
type Table[K comparable, V any] struct {
	entries map[K]V
}

// New creates an empty table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V)}
}

// Get returns the value stored under key and whether it was present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Put stores value under key, replacing any previous entry.
// Replacing an entry with an identical value is harmless; tables are
// only ever filled with deterministic computation results.
func (t *Table[K, V]) Put(key K, value V) {
	t.entries[key] = value
}

// GetOrCompute returns the value stored under key, computing and
// storing it first if absent. The compute function is invoked at most
// once per distinct key over the lifetime of the table.
func (t *Table[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := t.entries[key]; ok {
		return v
	}
	v := compute()
	t.entries[key] = v
	return v
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return len(t.entries) }
