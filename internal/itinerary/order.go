package itinerary

import (
	"cmp"
	"slices"
)

// Ordered is anything positioned by an explicit integer order within its parent.
type Ordered interface {
	DisplayOrder() int
}

// SortByOrder sorts ascending by DisplayOrder. Equal orders keep their
// incoming relative position; orders need not be contiguous or unique.
func SortByOrder[T Ordered](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.DisplayOrder(), b.DisplayOrder())
	})
}
