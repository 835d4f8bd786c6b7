package storage

import "treedb/deepsize"

// Stats is a point-in-time summary of the store's contents. Deleted
// records are never reclaimed, so TotalRecords and MemoryBytes only
// ever grow.
type Stats struct {
	TotalRecords   int   // heap slots, live and deleted
	LiveRecords    int   // records visible to lookups
	DeletedRecords int   // soft-deleted slots still held
	IDKeys         int   // keys in the id index
	LastNameKeys   int   // keys (buckets) in the last-name index
	MemoryBytes    int64 // deep size estimate of heap and indexes
}

// Stats walks the heap and reports counts and an estimated memory
// footprint.
func (e *Engine) Stats() Stats {
	live := 0
	for _, rec := range e.heap.records {
		if !rec.Deleted {
			live++
		}
	}
	return Stats{
		TotalRecords:   e.heap.len(),
		LiveRecords:    live,
		DeletedRecords: e.heap.len() - live,
		IDKeys:         e.idIndex.Len(),
		LastNameKeys:   e.lastIndex.Len(),
		MemoryBytes:    deepsize.Of(e),
	}
}
