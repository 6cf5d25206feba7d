package domain

import "slices"

// FilterNested keeps the inner slices that do not contain elem.
// Order is preserved and the result is never nil.
func FilterNested(arrs [][]int, elem int) [][]int {
	out := make([][]int, 0, len(arrs))
	for _, a := range arrs {
		if slices.Contains(a, elem) {
			continue
		}
		out = append(out, slices.Clone(a))
	}
	return out
}
