package storage

import "strings"

// compareID orders record ids. Returns -1, 0, or 1.
func compareID(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareName orders folded last-name keys bytewise. Collation is not
// a concern here; the index only needs a consistent total order in
// which keys sharing a prefix are contiguous.
func compareName(a, b string) int {
	return strings.Compare(a, b)
}
