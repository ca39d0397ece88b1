package records

import (
	"sort"
	"strconv"
)

// SortKeys returns the keys of a snapshot in record-store order: keys that
// parse as integers first, numerically, then the rest lexicographically.
func SortKeys[V any](snapshot map[string]V) []string {
	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

func keyLess(a, b string) bool {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return a < b
}
