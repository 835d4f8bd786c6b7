// Package storage implements an in-memory record store with two
// secondary indexes: a unique index on record id and a non-unique,
// case-folded index on last name. Both are binary search trees that
// count the key comparisons they perform, so every lookup reports its
// search cost.
package storage

// Record is the unit of storage. Only ID, Last, and Deleted matter to
// indexing; the remaining fields are opaque payload supplied by the
// caller.
//
// Deleted is managed by the engine. Records are soft-deleted: the flag
// flips, the heap slot stays.
type Record struct {
	ID      int
	First   string
	Last    string
	Deleted bool
}
