package storage

import "golang.org/x/text/cases"

// foldName normalizes a last name into its index key. Unicode case
// folding rather than plain lowercasing, so names that differ only in
// casing collide on one key even outside ASCII.
func foldName(s string) string {
	return cases.Fold().String(s)
}
