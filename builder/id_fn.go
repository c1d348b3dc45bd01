package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID. It must be injective.
type IDFn func(idx int) string

// OneBasedIDFn renders idx as idx+1 in decimal ("1","2",...). It is the
// default scheme: generated graphs use the token space "1".."n".
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// ZeroBasedIDFn renders idx in decimal ("0","1",...).
func ZeroBasedIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders idx as a spreadsheet column: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedIDFn returns an IDFn producing prefix+(idx+1), e.g. "n1","n2".
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx+1)
	}
}
