package views

import (
	"cmp"
	"slices"
)

// SortBy replays the elements sorted ascending by the given key, using a
// stable sort. Panics unless the upstream is finite and permanent; sort a
// computed view by staging it first.
//
// The sort runs per traversal: like every transformation, the result caches
// nothing across terminal operations.
func SortBy[T any, K cmp.Ordered](v View[T], key func(T) K) View[T] {
	v.mustBeFinite("SortBy")
	v.mustBePermanent("SortBy")
	return lazy(true, func(yield func(T) bool) {
		buf := slices.Collect(v.seq)
		slices.SortStableFunc(buf, func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		})
		for _, x := range buf {
			if !yield(x) {
				return
			}
		}
	})
}

// Sort replays the elements sorted ascending by value. Same contract as
// [SortBy].
func Sort[T cmp.Ordered](v View[T]) View[T] {
	return SortBy(v, func(x T) T { return x })
}

// Reverse replays the elements back to front. Panics unless the upstream is
// finite. A permanent upstream stays permanent, with indexed access mapped
// onto the mirrored position; otherwise the elements are materialized per
// traversal.
func (v View[T]) Reverse() View[T] {
	v.mustBeFinite("Reverse")
	if v.permanent {
		return permanentView(true, v.length, func(i int) (T, bool) {
			n := v.length()
			if i < 0 || i >= n {
				var zero T
				return zero, false
			}
			return v.at(n - 1 - i)
		})
	}
	return lazy(true, func(yield func(T) bool) {
		buf := slices.Collect(v.seq)
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				return
			}
		}
	})
}

// MaxBy yields the element with the largest key, as a view of zero or one
// element (zero only when the upstream is empty). On ties the later element
// wins: an element whose key equals the current best replaces it. Panics
// unless the upstream is finite.
func MaxBy[T any, K cmp.Ordered](v View[T], key func(T) K) View[T] {
	v.mustBeFinite("MaxBy")
	return lazy(true, func(yield func(T) bool) {
		var best T
		var bestKey K
		found := false
		for x := range v.seq {
			if k := key(x); !found || k >= bestKey {
				best, bestKey, found = x, k, true
			}
		}
		if found {
			yield(best)
		}
	})
}

// MinBy yields the element with the smallest key, as a view of zero or one
// element. On ties the earlier element wins: only a strictly smaller key
// replaces the current best. Panics unless the upstream is finite.
func MinBy[T any, K cmp.Ordered](v View[T], key func(T) K) View[T] {
	v.mustBeFinite("MinBy")
	return lazy(true, func(yield func(T) bool) {
		var best T
		var bestKey K
		found := false
		for x := range v.seq {
			if k := key(x); !found || k < bestKey {
				best, bestKey, found = x, k, true
			}
		}
		if found {
			yield(best)
		}
	})
}

// Max yields the largest element by value. See [MaxBy] for the tie rule.
func Max[T cmp.Ordered](v View[T]) View[T] {
	return MaxBy(v, func(x T) T { return x })
}

// Min yields the smallest element by value. See [MinBy] for the tie rule.
func Min[T cmp.Ordered](v View[T]) View[T] {
	return MinBy(v, func(x T) T { return x })
}
