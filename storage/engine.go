package storage

import (
	"strings"

	"treedb/storage/index"
)

// lastNameHigh is the upper bound used for prefix scans over the
// last-name index. 0xff never occurs in valid UTF-8, so this single
// byte sorts after every encodable key.
const lastNameHigh = "\xff"

// Engine composes the append-only heap with two ordered indexes:
//
//	idIndex:   record id  → RID          (unique)
//	lastIndex: folded last name → []RID  (non-unique buckets)
//
// Every mutation keeps all three structures consistent: an id is in
// idIndex exactly when its record is live, and lastIndex never holds an
// empty bucket.
//
// The engine is owned by a single logical caller; it performs no
// locking and assumes at most one operation in flight at a time.
type Engine struct {
	heap      recordHeap
	idIndex   *index.Tree[int, RID]
	lastIndex *index.Tree[string, []RID]
}

// New returns an empty store.
func New() *Engine {
	return &Engine{
		idIndex:   index.New[int, RID](compareID),
		lastIndex: index.New[string, []RID](compareName),
	}
}

// InsertRecord appends rec to the heap and registers it in both
// indexes. The returned RID is the record's permanent identity.
//
// If rec.ID already maps to a live record, the id mapping is
// overwritten and the older record becomes unreachable through
// FindByID while still occupying its heap slot and last-name bucket.
// Avoiding duplicate live ids is the caller's responsibility.
func (e *Engine) InsertRecord(rec Record) RID {
	rec.Deleted = false
	rid := e.heap.append(rec)

	e.idIndex.Insert(rec.ID, rid)

	key := foldName(rec.Last)
	if bucket := e.lastIndex.Find(key); bucket != nil {
		*bucket = append(*bucket, rid)
	} else {
		e.lastIndex.Insert(key, []RID{rid})
	}
	return rid
}

// DeleteByID soft-deletes the record with the given id. Returns false
// when the id is unknown (or already deleted), leaving every structure
// untouched.
func (e *Engine) DeleteByID(id int) bool {
	ridp := e.idIndex.Find(id)
	if ridp == nil {
		return false
	}
	rid := *ridp

	rec := e.heap.get(rid)
	rec.Deleted = true
	e.idIndex.Erase(id)

	// The bucket key comes from the stored record, not from anything
	// the caller passed in.
	key := foldName(rec.Last)
	if bucket := e.lastIndex.Find(key); bucket != nil {
		kept := (*bucket)[:0]
		for _, r := range *bucket {
			if r != rid {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			e.lastIndex.Erase(key)
		} else {
			*bucket = kept
		}
	}
	return true
}

// FindByID returns a copy of the live record with the given id, or nil
// when the id is unknown or the record is deleted, together with the
// number of key comparisons this one lookup performed.
func (e *Engine) FindByID(id int) (*Record, int) {
	e.idIndex.ResetMetrics()
	ridp := e.idIndex.Find(id)
	cmps := e.idIndex.Comparisons()
	if ridp == nil || !e.heap.live(*ridp) {
		return nil, cmps
	}
	rec := *e.heap.get(*ridp)
	return &rec, cmps
}

// RangeByID returns copies of every live record whose id is in
// [lo, hi] inclusive, in ascending id order, plus the comparison count
// of the bounded scan.
func (e *Engine) RangeByID(lo, hi int) ([]Record, int) {
	e.idIndex.ResetMetrics()
	var out []Record
	e.idIndex.RangeApply(lo, hi, func(_ int, rid RID) {
		if e.heap.live(rid) {
			out = append(out, *e.heap.get(rid))
		}
	})
	return out, e.idIndex.Comparisons()
}

// PrefixByLast returns copies of every live record whose last name
// starts with prefix, matched case-insensitively, plus the scan's
// comparison count. Records sharing a last name come back bucket by
// bucket; their relative order within a bucket carries no meaning.
func (e *Engine) PrefixByLast(prefix string) ([]Record, int) {
	e.lastIndex.ResetMetrics()
	p := foldName(prefix)

	var out []Record
	e.lastIndex.RangeApply(p, lastNameHigh, func(key string, bucket []RID) {
		// The range bound admits every key sorting after the prefix;
		// keep only true prefix matches.
		if !strings.HasPrefix(key, p) {
			return
		}
		for _, rid := range bucket {
			if e.heap.live(rid) {
				out = append(out, *e.heap.get(rid))
			}
		}
	})
	return out, e.lastIndex.Comparisons()
}
