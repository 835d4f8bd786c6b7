package storage

import "fmt"

// RID identifies a record by its position in the heap. RIDs are
// assigned at insertion and never reused or reassigned, even after the
// record is logically deleted.
type RID int

// recordHeap is the append-only backing store. Records are only ever
// appended; deletion flips Record.Deleted in place so that every RID
// handed out stays valid for the life of the store.
type recordHeap struct {
	records []Record
}

// append stores rec and returns its RID, which is the heap length
// before the append.
func (h *recordHeap) append(rec Record) RID {
	rid := RID(len(h.records))
	h.records = append(h.records, rec)
	return rid
}

// get returns the record at rid for inspection or mutation. An
// out-of-range RID can only come from a corrupted index, so it is
// fatal rather than recoverable.
func (h *recordHeap) get(rid RID) *Record {
	if rid < 0 || int(rid) >= len(h.records) {
		panic(fmt.Sprintf("storage: RID %d outside heap of %d records", rid, len(h.records)))
	}
	return &h.records[rid]
}

// live reports whether rid is in bounds and not soft-deleted. Bounds
// and liveness are checked independently.
func (h *recordHeap) live(rid RID) bool {
	return rid >= 0 && int(rid) < len(h.records) && !h.records[rid].Deleted
}

func (h *recordHeap) len() int {
	return len(h.records)
}
