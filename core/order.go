package core

import (
	"sort"
	"strconv"
)

// LessID orders vertex IDs naturally: IDs that parse as integers come
// first in numeric order, every other ID follows in lexicographic order.
// Generated graphs label vertices "1".."n", so this keeps "10" after "9".
func LessID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b // "01" vs "1"
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// SortIDs sorts ids in place by LessID and returns the slice.
func SortIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool { return LessID(ids[i], ids[j]) })

	return ids
}

// lessEdgeID orders "e<n>" identifiers by their sequence number.
func lessEdgeID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
