// Package sorting provides the shared partition-exchange selector used
// wherever a secondary-key ordering must be produced on demand: follower id
// lists by follow timestamp, registered-user id lists by id value, and
// trending terms by occurrence count. One generic routine replaces the
// per-call-site copies such an ordering would otherwise need.
package sorting

// SortByKeyDesc sorts items in place, descending by the extracted key.
// Middle-element pivot with a two-pointer exchange scan; not stable, so
// entries with equal keys end up in arbitrary relative order. Ascending
// orders are produced by inverting the key: negation when the key range is
// known to be bounded, bitwise complement when it may include
// math.MinInt64, whose negation overflows.
func SortByKeyDesc[T any](items []T, key func(T) int64) {
	if len(items) < 2 {
		return
	}
	quicksort(items, 0, len(items)-1, key)
}

func quicksort[T any](items []T, left, right int, key func(T) int64) {
	idx := partition(items, left, right, key)
	if left < idx-1 {
		quicksort(items, left, idx-1, key)
	}
	if idx < right {
		quicksort(items, idx, right, key)
	}
}

func partition[T any](items []T, left, right int, key func(T) int64) int {
	i, j := left, right
	pivot := key(items[(left+right)/2])

	for i <= j {
		for key(items[i]) > pivot {
			i++
		}
		for key(items[j]) < pivot {
			j--
		}
		if i <= j {
			items[i], items[j] = items[j], items[i]
			i++
			j--
		}
	}
	return i
}
